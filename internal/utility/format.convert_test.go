package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id, String2ObjectID(id.Hex()))
	assert.Equal(t, primitive.NilObjectID, String2ObjectID("hex sai"))
	assert.Equal(t, primitive.NilObjectID, String2ObjectID(""))
}

func TestObjectID2String(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id.Hex(), ObjectID2String(id))
}

func TestStringArray2ObjectIDArray(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	got := StringArray2ObjectIDArray([]string{a.Hex(), b.Hex()})
	assert.Equal(t, []primitive.ObjectID{a, b}, got)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KB", FormatBytes(1024))
	assert.Equal(t, "1.5 MB", FormatBytes(1536*1024))
}
