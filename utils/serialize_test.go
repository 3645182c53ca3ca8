package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeDocument(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2024, 3, 1, 12, 30, 0, 123_000_000, time.UTC)
	updated := time.Date(2024, 3, 1, 7, 30, 0, 0, time.FixedZone("EST", -5*3600))

	doc := bson.M{
		"_id":        oid,
		"title":      "Cozy Condo",
		"price":      int64(250000),
		"features":   bson.A{"Pool"},
		"sqft":       nil,
		"created_at": primitive.NewDateTimeFromTime(created),
		"updated_at": updated,
	}

	out := NormalizeDocument(doc)

	assert.Equal(t, oid.Hex(), out["id"])
	assert.NotContains(t, out, "_id")
	assert.Equal(t, "2024-03-01T12:30:00.123Z", out["created_at"])
	assert.Equal(t, "2024-03-01T12:30:00.000Z", out["updated_at"])
	assert.Equal(t, "Cozy Condo", out["title"])
	assert.Equal(t, int64(250000), out["price"])
	assert.Equal(t, bson.A{"Pool"}, out["features"])
	assert.Contains(t, out, "sqft")
	assert.Nil(t, out["sqft"])
	assert.Len(t, out, len(doc))
}

func TestNormalizeDocumentIdentifierForms(t *testing.T) {
	assert.Equal(t, "custom-key", NormalizeDocument(bson.M{"_id": "custom-key"})["id"])
	assert.Equal(t, "42", NormalizeDocument(bson.M{"_id": int32(42)})["id"])
	assert.NotContains(t, NormalizeDocument(bson.M{"title": "no id"}), "id")
}

func TestNormalizeDocumentTimestamp(t *testing.T) {
	out := NormalizeDocument(bson.M{"seen": primitive.Timestamp{T: 1700000000, I: 1}})
	assert.Equal(t, "2023-11-14T22:13:20.000Z", out["seen"])
}

func TestNormalizeDocumentsNeverNil(t *testing.T) {
	out := NormalizeDocuments(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
