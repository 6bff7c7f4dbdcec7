package validate

import "github.com/Alphish/ston-go/model"

func checkGlobalIdentifier(id string) error {
	if id == "" {
		return nil
	}
	if !model.IsCanunIdentifier(id) {
		return &StructuralViolationError{Reason: "global identifier must be a valid CANUN identifier"}
	}
	return nil
}

func checkDeclaredType(t model.Type) error {
	if t == nil {
		return nil
	}
	return Type(t)
}

// Entity shallow-validates a single entity and its immediate structural
// components (declared type, construction, member-init, collection-init,
// or address), per §4.5. Errors are wrapped in an EntityError naming the
// offending entity.
func Entity(e model.Entity) error {
	switch ent := e.(type) {
	case *model.SimpleEntity:
		if err := checkGlobalIdentifier(ent.GlobalIdentifier()); err != nil {
			return wrapEntity("SimpleEntity", e, err)
		}
		if err := checkDeclaredType(ent.DeclaredType()); err != nil {
			return wrapEntity("SimpleEntity", e, err)
		}
		if err := SimpleValue(ent.Value()); err != nil {
			return wrapEntity("SimpleEntity", e, err)
		}
		return nil

	case *model.ComplexEntity:
		if ent.Construction() == nil && ent.MemberInit() == nil && ent.CollectionInit() == nil {
			return wrapEntity("ComplexEntity", e, &StructuralViolationError{
				Reason: "a complex entity must carry a construction, member-init or collection-init",
			})
		}
		if err := checkGlobalIdentifier(ent.GlobalIdentifier()); err != nil {
			return wrapEntity("ComplexEntity", e, err)
		}
		if err := checkDeclaredType(ent.DeclaredType()); err != nil {
			return wrapEntity("ComplexEntity", e, err)
		}
		if err := Construction(ent.Construction()); err != nil {
			return wrapEntity("ComplexEntity", e, err)
		}
		if err := MemberInit(ent.MemberInit()); err != nil {
			return wrapEntity("ComplexEntity", e, err)
		}
		if err := CollectionInit(ent.CollectionInit()); err != nil {
			return wrapEntity("ComplexEntity", e, err)
		}
		return nil

	case *model.ReferenceEntity:
		if err := checkGlobalIdentifier(ent.GlobalIdentifier()); err != nil {
			return wrapEntity("ReferenceEntity", e, err)
		}
		if err := Address(ent.Address()); err != nil {
			return wrapEntity("ReferenceEntity", e, err)
		}
		return nil

	default:
		return wrapEntity("Entity", e, &ImplementationMismatchError{Context: "Entity"})
	}
}
