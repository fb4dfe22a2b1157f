package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOKWithData(t *testing.T) {
	data := map[string]int{"total": 3}
	resp := StatusOKWithData(data)

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, data, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("file not found")

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "file not found", resp.Error)
}

func TestValidationError(t *testing.T) {
	type testRequest struct {
		Type      string `validate:"required"`
		StartDate string `validate:"max=4"`
		ProjectID int    `validate:"gte=0"`
		Count     string `validate:"numeric"`
		Mail      string `validate:"email"`
	}

	err := validator.New().Struct(testRequest{
		StartDate: "2024-01-01",
		ProjectID: -1,
		Count:     "ten",
		Mail:      "nope",
	})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))

	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Type is a required field")
	assert.Contains(t, resp.Error, "field StartDate must be at most 4 characters")
	assert.Contains(t, resp.Error, "field ProjectID must be greater than or equal to 0")
	assert.Contains(t, resp.Error, "field Count can contain only numbers")
	assert.Contains(t, resp.Error, "field Mail is not a valid")
}
