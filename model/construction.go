package model

// NamedParameter is a single name/value pair inside a Construction.
type NamedParameter struct {
	name  string
	value Entity
}

func NewNamedParameter(name string, value Entity) NamedParameter {
	return NamedParameter{name: name, value: value}
}

func (p NamedParameter) Name() string  { return p.name }
func (p NamedParameter) Value() Entity { return p.value }

// Construction is the positional+named parameter bundle attached to a
// complex entity. Uniqueness of named-parameter names and absence of nil
// entries are §4.5 validator concerns, not constructor concerns.
type Construction struct {
	positionalParameters []Entity
	namedParameters      []NamedParameter
}

func NewConstruction(positionalParameters []Entity, namedParameters []NamedParameter) *Construction {
	if positionalParameters == nil {
		positionalParameters = []Entity{}
	}
	if namedParameters == nil {
		namedParameters = []NamedParameter{}
	}
	return &Construction{positionalParameters: positionalParameters, namedParameters: namedParameters}
}

func (c *Construction) PositionalParameters() []Entity     { return c.positionalParameters }
func (c *Construction) NamedParameters() []NamedParameter  { return c.namedParameters }

// MemberBinding is a single binding-key/value pair inside a MemberInit.
type MemberBinding struct {
	key   BindingKey
	value Entity
}

func NewMemberBinding(key BindingKey, value Entity) MemberBinding {
	return MemberBinding{key: key, value: value}
}

func (b MemberBinding) Key() BindingKey { return b.key }
func (b MemberBinding) Value() Entity   { return b.value }

// MemberInit is the `{ ... }` member-initialization block of a complex
// entity.
type MemberInit struct {
	memberBindings []MemberBinding
}

func NewMemberInit(memberBindings []MemberBinding) *MemberInit {
	if memberBindings == nil {
		memberBindings = []MemberBinding{}
	}
	return &MemberInit{memberBindings: memberBindings}
}

func (m *MemberInit) MemberBindings() []MemberBinding { return m.memberBindings }

// CollectionInit is the `[ ... ]` collection-initialization block of a
// complex entity.
type CollectionInit struct {
	elements []Entity
}

func NewCollectionInit(elements []Entity) *CollectionInit {
	if elements == nil {
		elements = []Entity{}
	}
	return &CollectionInit{elements: elements}
}

func (c *CollectionInit) Elements() []Entity { return c.elements }
