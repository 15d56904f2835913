package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type fakeFinder struct {
	doc    any
	err    error
	filter any
}

func (f *fakeFinder) FindOne(_ context.Context, filter any, _ ...options.Lister[options.FindOneOptions]) *mongo.SingleResult {
	f.filter = filter
	return mongo.NewSingleResultFromDocument(f.doc, f.err, nil)
}

func TestUsers_GetUserByEmail(t *testing.T) {
	t.Parallel()

	id := bson.NewObjectID()
	verified := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		f := &fakeFinder{doc: bson.D{
			{Key: "_id", Value: id},
			{Key: "email", Value: "jane@example.com"},
			{Key: "name", Value: "Jane"},
			{Key: "emailVerified", Value: verified},
		}}
		p, err := NewUsers(f).GetUserByEmail(context.Background(), "jane@example.com")

		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, id.Hex(), p.ID)
		assert.Equal(t, "Jane", p.Name)
		require.NotNil(t, p.EmailVerified)
		assert.True(t, verified.Equal(*p.EmailVerified))
		assert.Equal(t, bson.D{{Key: "email", Value: "jane@example.com"}}, f.filter)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		f := &fakeFinder{doc: bson.D{}, err: mongo.ErrNoDocuments}
		p, err := NewUsers(f).GetUserByEmail(context.Background(), "ghost@example.com")

		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("driver failure", func(t *testing.T) {
		t.Parallel()

		f := &fakeFinder{doc: bson.D{}, err: errors.New("server selection timeout")}
		p, err := NewUsers(f).GetUserByEmail(context.Background(), "a@b.c")

		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrUserLookupFailed)
	})
}

func TestUserDocument_Profile(t *testing.T) {
	t.Parallel()

	id := bson.NewObjectID()
	p := userDocument{ID: id, Email: "a@b.c"}.profile()

	assert.Equal(t, id.Hex(), p.ID)
	assert.Equal(t, "a@b.c", p.Email)
	assert.Nil(t, p.EmailVerified)
}

func TestConnect_EmptyURL(t *testing.T) {
	t.Parallel()

	_, err := Connect(context.Background(), Config{})
	assert.ErrorIs(t, err, ErrEmptyConnectionURL)
}
