package store

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"RealtyAPI/utils"
)

func TestMain(m *testing.M) {
	utils.Logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestMongoWithoutURLIsUnavailable(t *testing.T) {
	ctx := context.Background()
	m, err := NewMongo(ctx, "", "realty", 0)
	require.NoError(t, err)

	_, err = m.Insert(ctx, "property", bson.M{"title": "x"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = m.Find(ctx, "property", nil, 10)
	var storeErr *Error
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "find", storeErr.Op)
	assert.Equal(t, "store: find property: database not available", err.Error())

	_, err = m.FindOne(ctx, "property", "65f1c0ffee0000000000beef")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrNotFound)

	assert.False(t, m.Diagnose(ctx).Configured)
	assert.NoError(t, m.Close(ctx))
}

func TestMongoRejectsBadURL(t *testing.T) {
	ctx := context.Background()
	m, err := NewMongo(ctx, "postgres://nope", "realty", 0)

	var storeErr *Error
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "connect", storeErr.Op)

	require.NotNil(t, m)
	_, err = m.Insert(ctx, "property", bson.M{"title": "x"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNilMongoIsUnavailable(t *testing.T) {
	var m *Mongo
	_, err := m.Find(context.Background(), "inquiry", nil, 1)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, m.Close(context.Background()))
}
