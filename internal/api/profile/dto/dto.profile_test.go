package profiledto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehedi2283/nobelMan-server/internal/common"
)

func TestProfileUpdateInput_Fields(t *testing.T) {
	fields, err := ProfileUpdateInput{
		"name":          "Mehedi",
		"totalProjects": float64(42),
		"resumeUrl":     nil,
		"unknown":       "bị bỏ qua",
		"_id":           "không được ghi",
	}.Fields()
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"name":          "Mehedi",
		"totalProjects": "42",
		"resumeUrl":     "",
	}, fields)
}

func TestProfileUpdateInput_RejectsObjects(t *testing.T) {
	_, err := ProfileUpdateInput{"bio": map[string]interface{}{"x": 1}}.Fields()
	assert.Equal(t, common.StatusBadRequest, common.StatusOf(err))
	assert.EqualError(t, err, "bio must be a string")
}
