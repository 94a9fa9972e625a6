package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Defaults(t *testing.T) {
	t.Parallel()

	ee := Newf("something failed").Build()

	assert.Equal(t, ComponentUnknown, ee.Component)
	assert.Equal(t, CategoryGeneric, ee.Category)
	assert.Equal(t, "something failed", ee.Error())
	assert.False(t, ee.Timestamp.IsZero())
}

func TestBuilder_ComponentCategoryContext(t *testing.T) {
	t.Parallel()

	ee := Newf("bad threshold %.2f", 1.5).
		Component("conf").
		Category(CategoryValidation).
		Context("threshold", 1.5).
		Build()

	assert.Equal(t, "conf", ee.Component)
	assert.Equal(t, CategoryValidation, ee.Category)
	assert.Equal(t, 1.5, ee.GetContext()["threshold"])
}

func TestEnhancedError_Unwrap(t *testing.T) {
	t.Parallel()

	base := stderrors.New("base")
	ee := New(base).Category(CategoryFileIO).Build()

	require.ErrorIs(t, ee, base)
}

func TestIsCategory(t *testing.T) {
	t.Parallel()

	ee := Newf("parse failure").Category(CategoryFileParsing).Build()

	assert.True(t, IsCategory(ee, CategoryFileParsing))
	assert.False(t, IsCategory(ee, CategoryDatastore))
	assert.False(t, IsCategory(stderrors.New("plain"), CategoryFileParsing))
}

func TestGetContext_ReturnsCopy(t *testing.T) {
	t.Parallel()

	ee := Newf("x").Context("k", "v").Build()
	ctx := ee.GetContext()
	ctx["k"] = "mutated"

	assert.Equal(t, "v", ee.GetContext()["k"])
}
