package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alphish/ston-go/model"
	"github.com/Alphish/ston-go/validate"
)

func TestEntity_SimpleEntity_Valid(t *testing.T) {
	e := model.NewSimpleEntity(model.NewSimpleValue(model.Number, "1e0"), nil, "")
	assert.NoError(t, validate.Entity(e))
}

func TestEntity_SimpleEntity_InvalidGlobalIdentifier(t *testing.T) {
	e := model.NewSimpleEntity(model.NewSimpleValue(model.Number, "1e0"), nil, "1bad")
	err := validate.Entity(e)
	require.Error(t, err)
	var entityErr *validate.EntityError
	require.ErrorAs(t, err, &entityErr)
	assert.Equal(t, "SimpleEntity", entityErr.Kind)
}

func TestEntity_SimpleEntity_MalformedContentWraps(t *testing.T) {
	e := model.NewSimpleEntity(model.NewSimpleValue(model.Number, "not-a-number"), nil, "")
	err := validate.Entity(e)
	require.Error(t, err)
	var malformed *validate.MalformedContentError
	require.ErrorAs(t, err, &malformed)
}

func TestEntity_ComplexEntity_RequiresAtLeastOneBlock(t *testing.T) {
	e := model.NewComplexEntity(nil, nil, nil, nil, "")
	err := validate.Entity(e)
	require.Error(t, err)
	var violation *validate.StructuralViolationError
	require.ErrorAs(t, err, &violation)
}

func TestEntity_ComplexEntity_ConstructionDuplicateNamedParameter(t *testing.T) {
	param := model.NewSimpleEntity(model.NewSimpleValue(model.Number, "0"), nil, "")
	c := model.NewConstruction(nil, []model.NamedParameter{
		model.NewNamedParameter("x", param),
		model.NewNamedParameter("x", param),
	})
	e := model.NewComplexEntity(c, nil, nil, nil, "")
	require.Error(t, validate.Entity(e))
}

func TestEntity_ComplexEntity_ConstructionValid(t *testing.T) {
	param := model.NewSimpleEntity(model.NewSimpleValue(model.Number, "0"), nil, "")
	c := model.NewConstruction([]model.Entity{param}, []model.NamedParameter{
		model.NewNamedParameter("x", param),
	})
	e := model.NewComplexEntity(c, nil, nil, nil, "")
	assert.NoError(t, validate.Entity(e))
}

func TestEntity_ComplexEntity_NullParameterIsError(t *testing.T) {
	c := model.NewConstruction([]model.Entity{nil}, nil)
	e := model.NewComplexEntity(c, nil, nil, nil, "")
	require.Error(t, validate.Entity(e))
}

func TestEntity_ReferenceEntity_Valid(t *testing.T) {
	addr := model.NewAddress(model.NewAncestorInitialContext(0), nil)
	e := model.NewReferenceEntity(addr, "")
	assert.NoError(t, validate.Entity(e))
}

func TestEntity_ReferenceEntity_NegativeAncestorOrderIsError(t *testing.T) {
	addr := model.NewAddress(model.NewAncestorInitialContext(-1), nil)
	e := model.NewReferenceEntity(addr, "")
	require.Error(t, validate.Entity(e))
}
