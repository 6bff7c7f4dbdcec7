package model

// BindingKey is the closed sum of the two ways a complex value's member
// can be addressed: by name (`.foo` / `.foo!`) or by index parameters
// (`[1, 2]`).
type BindingKey interface {
	bindingKey()
}

// BindingName is a member access by CANUN name, optionally marked as an
// extension member (`!`).
type BindingName struct {
	name        string
	isExtension bool
}

func NewBindingName(name string, isExtension bool) *BindingName {
	return &BindingName{name: name, isExtension: isExtension}
}

func (k *BindingName) bindingKey() {}

func (k *BindingName) Name() string      { return k.name }
func (k *BindingName) IsExtension() bool { return k.isExtension }

// BindingIndex is a member access by one or more index parameters.
// Parameters is non-empty and contains no nulls (enforced by the
// validator, not the constructor).
type BindingIndex struct {
	parameters []Entity
}

func NewBindingIndex(parameters []Entity) *BindingIndex {
	return &BindingIndex{parameters: parameters}
}

func (k *BindingIndex) bindingKey() {}

func (k *BindingIndex) Parameters() []Entity { return k.parameters }
