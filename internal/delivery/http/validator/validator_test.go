package validator

import (
	"testing"

	domainerrors "garden/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name    string         `json:"name" validate:"required"`
	Balance *int           `json:"balance" validate:"required,gte=0"`
	Items   map[string]any `json:"items" validate:"required"`
	Skipped string         `json:"-"`
}

func TestValidate_ItemizesByJSONName(t *testing.T) {
	err := New().Validate(&sampleRequest{})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"name is required",
		"balance is required",
		"items is required",
	}, validationErr.Items)
}

func TestValidate_Passes(t *testing.T) {
	zero := 0
	err := New().Validate(&sampleRequest{Name: "x", Balance: &zero, Items: map[string]any{}})

	assert.NoError(t, err)
}

func TestValidate_Bounds(t *testing.T) {
	negative := -5
	err := New().Validate(&sampleRequest{Name: "x", Balance: &negative, Items: map[string]any{}})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"balance must be greater than or equal to 0"}, validationErr.Items)
}
