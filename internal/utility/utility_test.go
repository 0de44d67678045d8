package utility

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mehedi2283/nobelMan-server/internal/common"
)

type partial struct {
	Title *string `bson:"title,omitempty"`
	Year  *string `bson:"year,omitempty"`
}

func TestToMap_OmitsUnsetPointers(t *testing.T) {
	title := "Redesign"
	m, err := ToMap(partial{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"title": "Redesign"}, m)

	empty, err := ToMap(partial{})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestParseObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	got, err := ParseObjectID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	_, err = ParseObjectID("abc")
	assert.True(t, errors.Is(err, common.ErrInvalidID))
}

func TestStringArray2ObjectIDArray(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	ids, err := StringArray2ObjectIDArray([]string{a.Hex(), b.Hex()})
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{a, b}, ids)

	_, err = StringArray2ObjectIDArray([]string{a.Hex(), "x"})
	assert.Error(t, err)
}

func TestFlexibleIDMatch(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, bson.M{"$in": bson.A{oid, oid.Hex()}}, FlexibleIDMatch(oid.Hex()))
	assert.Equal(t, "legacy-1", FlexibleIDMatch("legacy-1"))
}

func TestGoProtect(t *testing.T) {
	assert.NotPanics(t, func() {
		GoProtect(func() { panic("boom") })
	})
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]int{1}, 2))
}
