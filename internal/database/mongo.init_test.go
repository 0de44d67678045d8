package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexedModel struct {
	ID        string    `bson:"id" index:"unique"`
	Order     int       `bson:"order" index:"single"`
	Email     string    `bson:"email,omitempty" index:"unique,sparse"`
	CreatedAt time.Time `bson:"createdAt" index:"single,order:-1"`
	Title     string    `bson:"title"`
	Ignored   string    `bson:"-" index:"unique"`
}

func TestParseIndexTag(t *testing.T) {
	got := parseIndexTag("single,order:-1;unique")
	require.Len(t, got, 2)
	assert.Equal(t, map[string]string{"single": "", "order": "-1"}, got[0])
	assert.Equal(t, map[string]string{"unique": ""}, got[1])

	assert.Empty(t, parseIndexTag(""))
}

func TestIndexSpecs(t *testing.T) {
	specs := indexSpecs(&indexedModel{})
	require.Len(t, specs, 4)

	byName := map[string]indexSpec{}
	for _, s := range specs {
		byName[s.name] = s
	}

	assert.Equal(t, bson.D{{Key: "id", Value: 1}}, byName["id_unique"].keys)
	assert.True(t, *byName["id_unique"].options.Unique)
	assert.Equal(t, bson.D{{Key: "order", Value: 1}}, byName["order_single"].keys)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, byName["createdAt_single"].keys)
	assert.True(t, *byName["email_unique"].options.Sparse)
}

func TestCompareIndex(t *testing.T) {
	keys := bson.D{{Key: "id", Value: 1}}
	unique := options.Index().SetUnique(true)

	assert.True(t, compareIndex(bson.M{"key": bson.M{"id": int32(1)}, "unique": true}, keys, unique))
	assert.False(t, compareIndex(bson.M{"key": bson.M{"id": int32(1)}}, keys, unique), "index cũ không unique")
	assert.False(t, compareIndex(bson.M{"key": bson.M{"id": int32(-1)}, "unique": true}, keys, unique))
	assert.True(t, compareIndex(bson.M{"key": bson.M{"order": float64(1)}}, bson.D{{Key: "order", Value: 1}}, options.Index()))
}

func TestFindEquivalentIndex(t *testing.T) {
	spec := indexSpec{
		name:    "id_unique",
		keys:    bson.D{{Key: "id", Value: 1}},
		options: options.Index().SetName("id_unique").SetUnique(true),
	}
	existing := map[string]bson.M{
		"_id_": {"key": bson.M{"_id": int32(1)}},
		"id_1": {"key": bson.M{"id": int32(1)}, "unique": true},
	}

	name, ok := findEquivalentIndex(existing, spec)
	assert.True(t, ok)
	assert.Equal(t, "id_1", name)

	delete(existing, "id_1")
	_, ok = findEquivalentIndex(existing, spec)
	assert.False(t, ok)
}
