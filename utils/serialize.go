package utils

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ISOLayout is ISO-8601 at the millisecond precision BSON datetimes carry.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// NormalizeDocument prepares a stored record for a response: _id becomes a
// string "id" and top-level timestamps become ISO-8601 text. Other fields
// pass through untouched.
func NormalizeDocument(doc bson.M) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = normalizeValue(v)
	}
	if id, ok := doc["_id"]; ok {
		out["id"] = idString(id)
	}
	return out
}

func NormalizeDocuments(docs []bson.M) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		out = append(out, NormalizeDocument(d))
	}
	return out
}

func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(v)
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC().Format(ISOLayout)
	case time.Time:
		return t.UTC().Format(ISOLayout)
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC().Format(ISOLayout)
	default:
		return v
	}
}
