package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"recipeshare/model"
)

// ErrVersionConflict is returned by RecipeStore.Save when the document was
// written by someone else between our read and write. Callers reload and
// reapply.
var ErrVersionConflict = errors.New("recipe was modified concurrently")

// ErrDuplicateKey is returned by UserStore.Insert when a unique constraint
// (the email index) rejects the document.
var ErrDuplicateKey = errors.New("duplicate key")

// RecipeStore is the persistence contract for the recipe aggregate. FindByID
// and FindByTitle return (nil, nil) when the document is absent. Save is a
// compare-and-swap keyed on Recipe.Version.
type RecipeStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Recipe, error)
	FindByTitle(ctx context.Context, title string) (*model.Recipe, error)
	Insert(ctx context.Context, r *model.Recipe) error
	Save(ctx context.Context, r *model.Recipe) error
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
	List(ctx context.Context) ([]model.Recipe, error)
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Recipe, error)
	ListByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.Recipe, error)
	TopRated(ctx context.Context, limit int64) ([]model.Recipe, error)
	SearchByIngredient(ctx context.Context, ingredient string) ([]model.Recipe, error)
}

// UserStore is the persistence contract for user documents and their
// follower/following/saved sets. The set mutations are atomic and idempotent
// per document ($addToSet/$pull), so a partially applied follow can always be
// retried safely.
type UserStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.User, error)
	Insert(ctx context.Context, u *model.User) error
	UpdateProfile(ctx context.Context, id bson.ObjectID, upd model.ProfileUpdate) (*model.User, error)
	AddFollow(ctx context.Context, followerID, followeeID bson.ObjectID) error
	RemoveFollow(ctx context.Context, followerID, followeeID bson.ObjectID) error
	AddSavedRecipe(ctx context.Context, userID, recipeID bson.ObjectID) error
	RemoveSavedRecipe(ctx context.Context, userID, recipeID bson.ObjectID) error
	ListExcluding(ctx context.Context, exclude []bson.ObjectID) ([]model.User, error)
}
