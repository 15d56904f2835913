package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tawashy/next-auth/pkg/signin"
)

var _ signin.Adapter = (*Users)(nil)

// Finder is the part of *mongo.Collection used by Users.
type Finder interface {
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
}

// userDocument is the stored shape of a user.
type userDocument struct {
	ID            bson.ObjectID `bson:"_id"`
	Email         string        `bson:"email"`
	Name          string        `bson:"name,omitempty"`
	Image         string        `bson:"image,omitempty"`
	EmailVerified *time.Time    `bson:"emailVerified,omitempty"`
}

func (d userDocument) profile() *signin.Profile {
	return &signin.Profile{
		ID:            d.ID.Hex(),
		Email:         d.Email,
		Name:          d.Name,
		Image:         d.Image,
		EmailVerified: d.EmailVerified,
	}
}

// Users looks up users in a MongoDB collection.
type Users struct {
	coll Finder
}

// NewUsers creates a Users adapter over coll, normally
// client.Database(cfg.Database).Collection(cfg.Collection).
func NewUsers(coll Finder) *Users {
	return &Users{coll: coll}
}

// GetUserByEmail returns the user with the given address, or nil when there
// is none.
func (u *Users) GetUserByEmail(ctx context.Context, email string) (*signin.Profile, error) {
	var doc userDocument
	err := u.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrUserLookupFailed, err)
	}
	return doc.profile(), nil
}
