package model

// InitialContext is the starting point of a reference address: either an
// ancestor hop counted from the reference-defining entity, or a globally
// identified entity (the empty identifier denotes the document root).
type InitialContext interface {
	initialContext()
}

// AncestorInitialContext starts the address at the Order-th ancestor of
// the reference-defining entity; Order 0 is the entity itself.
type AncestorInitialContext struct {
	order int
}

func NewAncestorInitialContext(order int) *AncestorInitialContext {
	return &AncestorInitialContext{order: order}
}

func (c *AncestorInitialContext) initialContext() {}

func (c *AncestorInitialContext) Order() int { return c.order }

// GlobalEntityInitialContext starts the address at the entity carrying
// Identifier as its global identifier; an empty Identifier denotes the
// document root.
type GlobalEntityInitialContext struct {
	identifier string
}

func NewGlobalEntityInitialContext(identifier string) *GlobalEntityInitialContext {
	return &GlobalEntityInitialContext{identifier: identifier}
}

func (c *GlobalEntityInitialContext) initialContext() {}

func (c *GlobalEntityInitialContext) Identifier() string { return c.identifier }

// PathSegment is one hop of a reference's relative path: another
// ancestor hop, a member access, or a collection-element access.
type PathSegment interface {
	pathSegment()
}

// AncestorSegment hops Order ancestors up from the current path position.
// Order must be positive (§4.5); the constructor does not enforce this.
type AncestorSegment struct {
	order int
}

func NewAncestorSegment(order int) *AncestorSegment {
	return &AncestorSegment{order: order}
}

func (s *AncestorSegment) pathSegment() {}

func (s *AncestorSegment) Order() int { return s.order }

// MemberSegment accesses a complex value's member by BindingKey.
type MemberSegment struct {
	bindingKey BindingKey
}

func NewMemberSegment(bindingKey BindingKey) *MemberSegment {
	return &MemberSegment{bindingKey: bindingKey}
}

func (s *MemberSegment) pathSegment() {}

func (s *MemberSegment) BindingKey() BindingKey { return s.bindingKey }

// CollectionElementSegment accesses a collection element by index entity.
type CollectionElementSegment struct {
	elementIndex Entity
}

func NewCollectionElementSegment(elementIndex Entity) *CollectionElementSegment {
	return &CollectionElementSegment{elementIndex: elementIndex}
}

func (s *CollectionElementSegment) pathSegment() {}

func (s *CollectionElementSegment) ElementIndex() Entity { return s.elementIndex }

// Address is a reference's initial context plus the relative path walked
// from it.
type Address struct {
	initialContext InitialContext
	relativePath   []PathSegment
}

func NewAddress(initialContext InitialContext, relativePath []PathSegment) *Address {
	if relativePath == nil {
		relativePath = []PathSegment{}
	}
	return &Address{initialContext: initialContext, relativePath: relativePath}
}

func (a *Address) InitialContext() InitialContext { return a.initialContext }
func (a *Address) RelativePath() []PathSegment    { return a.relativePath }
