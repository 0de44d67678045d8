package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCommentID_StoresObjectIDForHex(t *testing.T) {
	oid := primitive.NewObjectID()
	data, err := bson.Marshal(Comment{ID: CommentID(oid.Hex()), Author: "A", Text: "hi"})
	require.NoError(t, err)

	raw := bson.Raw(data)
	assert.Equal(t, oid, raw.Lookup("_id").ObjectID(), "Hex hợp lệ phải được lưu là ObjectID")

	var back Comment
	require.NoError(t, bson.Unmarshal(data, &back))
	assert.Equal(t, CommentID(oid.Hex()), back.ID)
}

func TestCommentID_LegacyString(t *testing.T) {
	data, err := bson.Marshal(bson.M{"_id": "legacy-1", "author": "A", "text": "x"})
	require.NoError(t, err)

	var c Comment
	require.NoError(t, bson.Unmarshal(data, &c))
	assert.Equal(t, CommentID("legacy-1"), c.ID)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"_id":"legacy-1"`)
}

func TestProjectNormalize(t *testing.T) {
	p := Project{ID: "p1"}
	p.Normalize()

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"gallery":[]`)
	assert.Contains(t, string(out), `"comments":[]`)
	assert.NotContains(t, string(out), `"_id"`, "_id rỗng bị bỏ qua")
}
