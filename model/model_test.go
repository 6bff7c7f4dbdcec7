package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alphish/ston-go/model"
)

func TestIsCanunIdentifier(t *testing.T) {
	assert.True(t, model.IsCanunIdentifier("a"))
	assert.True(t, model.IsCanunIdentifier("_foo"))
	assert.True(t, model.IsCanunIdentifier("foo_bar2"))
	assert.False(t, model.IsCanunIdentifier(""))
	assert.False(t, model.IsCanunIdentifier("2foo"))
	assert.False(t, model.IsCanunIdentifier("foo.bar"))
	assert.False(t, model.IsCanunIdentifier("foo-bar"))
}

func TestIsCanunPath(t *testing.T) {
	assert.True(t, model.IsCanunPath("a"))
	assert.True(t, model.IsCanunPath("a.b.c"))
	assert.False(t, model.IsCanunPath(""))
	assert.False(t, model.IsCanunPath("a."))
	assert.False(t, model.IsCanunPath(".a"))
	assert.False(t, model.IsCanunPath("a..b"))
	assert.False(t, model.IsCanunPath("a.2b"))
}

func TestSimpleValue_Accessors(t *testing.T) {
	v := model.NewSimpleValue(model.Number, "1e3")
	assert.Equal(t, model.Number, v.DataType())
	assert.Equal(t, "1e3", v.Content())
}

func TestNamedType_TypeParametersNeverNil(t *testing.T) {
	nt := model.NewNamedType("Foo", nil, false)
	assert.NotNil(t, nt.TypeParameters())
	assert.Empty(t, nt.TypeParameters())
}

func TestConstruction_DefaultsToEmptySlices(t *testing.T) {
	c := model.NewConstruction(nil, nil)
	assert.NotNil(t, c.PositionalParameters())
	assert.NotNil(t, c.NamedParameters())
}

func TestAddress_RelativePathNeverNil(t *testing.T) {
	a := model.NewAddress(model.NewGlobalEntityInitialContext(""), nil)
	assert.NotNil(t, a.RelativePath())
	assert.Empty(t, a.RelativePath())
}

func TestEntity_VariantsImplementClosedSum(t *testing.T) {
	var entities []model.Entity
	entities = append(entities,
		model.NewSimpleEntity(model.NewSimpleValue(model.Number, "0"), nil, ""),
		model.NewComplexEntity(model.NewConstruction(nil, nil), nil, nil, nil, ""),
		model.NewReferenceEntity(model.NewAddress(model.NewAncestorInitialContext(0), nil), ""),
	)
	assert.Len(t, entities, 3)
}
