package model

// Entity is the closed sum of STON's three entity variants: a simple
// value, a complex construction/member-init/collection-init, or a
// reference to another entity by address. Entities form a tree — the
// data model has no cycles, since references point by address rather
// than by pointer — so shared ownership is always safe.
type Entity interface {
	entity()
}

// SimpleEntity carries a non-null SimpleValue, an optional declared
// Type, and an optional global identifier.
type SimpleEntity struct {
	value            SimpleValue
	declaredType     Type
	globalIdentifier string
}

func NewSimpleEntity(value SimpleValue, declaredType Type, globalIdentifier string) *SimpleEntity {
	return &SimpleEntity{value: value, declaredType: declaredType, globalIdentifier: globalIdentifier}
}

func (e *SimpleEntity) entity() {}

func (e *SimpleEntity) Value() SimpleValue        { return e.value }
func (e *SimpleEntity) DeclaredType() Type        { return e.declaredType }
func (e *SimpleEntity) GlobalIdentifier() string  { return e.globalIdentifier }

// ComplexEntity carries any combination of a construction, member-init
// and collection-init (at least one must be present, per §3 — enforced
// by the validator), an optional declared type, and an optional global
// identifier.
type ComplexEntity struct {
	construction     *Construction
	memberInit       *MemberInit
	collectionInit   *CollectionInit
	declaredType     Type
	globalIdentifier string
}

func NewComplexEntity(construction *Construction, memberInit *MemberInit, collectionInit *CollectionInit, declaredType Type, globalIdentifier string) *ComplexEntity {
	return &ComplexEntity{
		construction:     construction,
		memberInit:       memberInit,
		collectionInit:   collectionInit,
		declaredType:     declaredType,
		globalIdentifier: globalIdentifier,
	}
}

func (e *ComplexEntity) entity() {}

func (e *ComplexEntity) Construction() *Construction   { return e.construction }
func (e *ComplexEntity) MemberInit() *MemberInit       { return e.memberInit }
func (e *ComplexEntity) CollectionInit() *CollectionInit { return e.collectionInit }
func (e *ComplexEntity) DeclaredType() Type            { return e.declaredType }
func (e *ComplexEntity) GlobalIdentifier() string      { return e.globalIdentifier }

// ReferenceEntity carries a non-null Address and an optional global
// identifier.
type ReferenceEntity struct {
	address          *Address
	globalIdentifier string
}

func NewReferenceEntity(address *Address, globalIdentifier string) *ReferenceEntity {
	return &ReferenceEntity{address: address, globalIdentifier: globalIdentifier}
}

func (e *ReferenceEntity) entity() {}

func (e *ReferenceEntity) Address() *Address         { return e.address }
func (e *ReferenceEntity) GlobalIdentifier() string  { return e.globalIdentifier }

// IsCanunIdentifier reports whether s satisfies the CANUN identifier
// grammar: first char is a letter or underscore, every subsequent char is
// a letter, underscore or decimal digit.
func IsCanunIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		isBegin := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		isDigit := r >= '0' && r <= '9'
		if i == 0 {
			if !isBegin {
				return false
			}
			continue
		}
		if !isBegin && !isDigit {
			return false
		}
	}
	return true
}

// IsCanunPath reports whether s is a non-empty, not-trailing-dot sequence
// of CANUN identifiers separated by single dots — the grammar of a Named
// SimpleValue's content.
func IsCanunPath(s string) bool {
	if s == "" {
		return false
	}
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '.' {
			if !IsCanunIdentifier(s[start:i]) {
				return false
			}
			start = i + 1
		}
	}
	return true
}
