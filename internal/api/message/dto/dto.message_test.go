package messagedto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehedi2283/nobelMan-server/internal/common"
)

func TestMessageCreateInput_Fields(t *testing.T) {
	in := MessageCreateInput{
		"name":      "Ana",
		"email":     "ana@example.com",
		"_id":       "forged",
		"read":      true,
		"createdAt": "2001-01-01",
	}
	fields, err := in.Fields()
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "Ana", "email": "ana@example.com"}, fields)
}

func TestMessageCreateInput_RejectsOperatorKeys(t *testing.T) {
	for _, key := range []string{"$where", "a.b", ""} {
		_, err := MessageCreateInput{key: 1}.Fields()
		assert.Equal(t, common.StatusBadRequest, common.StatusOf(err), key)
	}
}
