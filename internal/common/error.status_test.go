package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_NoDocuments(t *testing.T) {
	err := ConvertMongoError(fmt.Errorf("find: %w", mongo.ErrNoDocuments))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, StatusNotFound, StatusOf(err))
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}

	err := ConvertMongoError(dup)
	assert.Equal(t, StatusConflict, StatusOf(err))
	assert.Contains(t, err.Error(), "E11000")
}

func TestConvertMongoError_StoreErrorKeepsMessage(t *testing.T) {
	err := ConvertMongoError(errors.New("connection refused"))
	assert.Equal(t, StatusInternalServerError, StatusOf(err))
	assert.Equal(t, "connection refused", err.Error())
}

func TestConvertMongoError_PassesAppErrors(t *testing.T) {
	nf := NewNotFoundError("Project not found")
	assert.Same(t, nf, ConvertMongoError(nf))
	assert.Nil(t, ConvertMongoError(nil))
}

func TestErrorIs_MatchesByCode(t *testing.T) {
	assert.True(t, errors.Is(NewNotFoundError("Comment not found"), ErrNotFound))
	assert.False(t, errors.Is(NewValidationError("Author and text required"), ErrNotFound))
}

func TestMissingFieldsError(t *testing.T) {
	err := MissingFieldsError([]string{"title", "image"})
	assert.Equal(t, "Missing required fields: title, image", err.Error())
	assert.Equal(t, StatusBadRequest, StatusOf(err))
}

func TestStatusOf_PlainError(t *testing.T) {
	assert.Equal(t, StatusInternalServerError, StatusOf(errors.New("boom")))
}
