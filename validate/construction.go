package validate

import "github.com/Alphish/ston-go/model"

// Construction shallow-validates a complex entity's construction block:
// every parameter exists and carries a recognized entity kind, and named
// parameter names are unique.
func Construction(c *model.Construction) error {
	if c == nil {
		return nil
	}
	values := make([]model.Entity, 0, len(c.PositionalParameters())+len(c.NamedParameters()))
	values = append(values, c.PositionalParameters()...)

	seen := make(map[string]bool, len(c.NamedParameters()))
	for _, np := range c.NamedParameters() {
		if seen[np.Name()] {
			return &StructuralViolationError{Reason: "named parameter names must be unique within a construction"}
		}
		seen[np.Name()] = true
		values = append(values, np.Value())
	}
	return Tree(values)
}

// MemberInit shallow-validates a complex entity's member-init block:
// every binding key and value exists and carries a recognized kind.
func MemberInit(m *model.MemberInit) error {
	if m == nil {
		return nil
	}
	values := make([]model.Entity, 0, len(m.MemberBindings()))
	for _, mb := range m.MemberBindings() {
		if mb.Key() == nil {
			return &NullArgumentError{Field: "memberInit.memberBindings[].key"}
		}
		if err := BindingKey(mb.Key()); err != nil {
			return err
		}
		values = append(values, mb.Value())
	}
	return Tree(values)
}

// CollectionInit shallow-validates a complex entity's collection-init
// block: every element exists and carries a recognized kind.
func CollectionInit(c *model.CollectionInit) error {
	if c == nil {
		return nil
	}
	return Tree(c.Elements())
}
