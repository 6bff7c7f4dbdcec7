package validate

import "github.com/Alphish/ston-go/model"

func entityGlobalIdentifier(e model.Entity) string {
	switch v := e.(type) {
	case *model.SimpleEntity:
		return v.GlobalIdentifier()
	case *model.ComplexEntity:
		return v.GlobalIdentifier()
	case *model.ReferenceEntity:
		return v.GlobalIdentifier()
	default:
		return ""
	}
}

// InitialContext shallow-validates a reference address's starting point:
// an ancestor order must be non-negative (order 0 is the entity itself).
func InitialContext(c model.InitialContext) error {
	switch ic := c.(type) {
	case *model.AncestorInitialContext:
		if ic.Order() < 0 {
			return &StructuralViolationError{Reason: "ancestor initial context order must be non-negative"}
		}
		return nil
	case *model.GlobalEntityInitialContext:
		return nil
	default:
		return &ImplementationMismatchError{Context: "InitialContext"}
	}
}

// BindingKey shallow-validates a member-access key. A BindingIndex must
// have at least one parameter, and its parameters must each exist, carry a
// recognized entity kind, omit any global identifier, and not be a complex
// entity (§4.5).
func BindingKey(k model.BindingKey) error {
	switch key := k.(type) {
	case *model.BindingName:
		return nil
	case *model.BindingIndex:
		if len(key.Parameters()) == 0 {
			return &StructuralViolationError{Reason: "a binding index must have at least one parameter"}
		}
		for _, p := range key.Parameters() {
			if err := kindCheck(p); err != nil {
				return err
			}
			if entityGlobalIdentifier(p) != "" {
				return &StructuralViolationError{Reason: "an index parameter must not declare a global identifier"}
			}
			if _, complex := p.(*model.ComplexEntity); complex {
				return &StructuralViolationError{Reason: "an index parameter must not be a complex entity"}
			}
		}
		return nil
	default:
		return &ImplementationMismatchError{Context: "BindingKey"}
	}
}

// PathSegment shallow-validates one hop of a reference's relative path.
func PathSegment(s model.PathSegment) error {
	switch seg := s.(type) {
	case *model.AncestorSegment:
		if seg.Order() <= 0 {
			return &StructuralViolationError{Reason: "a path segment's ancestor order must be positive"}
		}
		return nil
	case *model.MemberSegment:
		return BindingKey(seg.BindingKey())
	case *model.CollectionElementSegment:
		return validateCollectionElementIndex(seg.ElementIndex())
	default:
		return &ImplementationMismatchError{Context: "PathSegment"}
	}
}

func validateCollectionElementIndex(idx model.Entity) error {
	if err := kindCheck(idx); err != nil {
		return err
	}
	if entityGlobalIdentifier(idx) != "" {
		return &StructuralViolationError{Reason: "a collection-element index must not declare a global identifier"}
	}
	if se, ok := idx.(*model.SimpleEntity); ok {
		if se.DeclaredType() != nil {
			return &StructuralViolationError{Reason: "a collection-element index must have no declared type"}
		}
		dt := se.Value().DataType()
		if dt != model.Number && dt != model.Binary {
			return &StructuralViolationError{Reason: "a collection-element index must hold a Number or Binary value"}
		}
		return nil
	}
	if _, complex := idx.(*model.ComplexEntity); complex {
		return &StructuralViolationError{Reason: "a collection-element index must not be a complex entity"}
	}
	return nil
}

// Address shallow-validates a reference's initial context and every
// segment of its relative path.
func Address(a *model.Address) error {
	if a == nil {
		return &NullArgumentError{Field: "address"}
	}
	if a.InitialContext() == nil {
		return &NullArgumentError{Field: "address.initialContext"}
	}
	if err := InitialContext(a.InitialContext()); err != nil {
		return err
	}
	for _, seg := range a.RelativePath() {
		if seg == nil {
			return &NullArgumentError{Field: "address.relativePath[]"}
		}
		if err := PathSegment(seg); err != nil {
			return err
		}
	}
	return nil
}
