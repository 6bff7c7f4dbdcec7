package validate

import "github.com/Alphish/ston-go/model"

func typeKindCheck(t model.Type) error {
	if t == nil {
		return &NullArgumentError{Field: "type"}
	}
	switch t.(type) {
	case *model.NamedType, *model.CollectionType, *model.UnionType:
		return nil
	default:
		return &ImplementationMismatchError{Context: "Type"}
	}
}

// Type shallow-validates a declared type: its own invariants, plus
// existence and kind (not deep well-formedness, per the Open Question
// decision recorded in the design ledger) of any nested type it carries.
func Type(t model.Type) error {
	switch tt := t.(type) {
	case *model.NamedType:
		for _, tp := range tt.TypeParameters() {
			if err := typeKindCheck(tp); err != nil {
				return err
			}
		}
		return nil
	case *model.CollectionType:
		return typeKindCheck(tt.ElementType())
	case *model.UnionType:
		if len(tt.PermittedTypes()) < 2 {
			return &StructuralViolationError{Reason: "union type must have at least two permitted types"}
		}
		for _, pt := range tt.PermittedTypes() {
			if err := typeKindCheck(pt); err != nil {
				return err
			}
		}
		return nil
	default:
		return &ImplementationMismatchError{Context: "Type"}
	}
}
