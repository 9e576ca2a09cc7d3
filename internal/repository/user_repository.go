package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"recipeshare/internal/services"
	"recipeshare/model"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

// isDuplicateKey reports a unique-index violation (code 11000), used to map
// a racing double-registration onto the same conflict as the pre-check.
func isDuplicateKey(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var u model.User
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.Col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.User, error) {
	if len(ids) == 0 {
		return []model.User{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *UserRepository) Insert(ctx context.Context, u *model.User) error {
	now := time.Now().UTC()
	u.ID = bson.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Followers == nil {
		u.Followers = []bson.ObjectID{}
	}
	if u.Following == nil {
		u.Following = []bson.ObjectID{}
	}
	if u.SavedRecipes == nil {
		u.SavedRecipes = []bson.ObjectID{}
	}
	if _, err := r.Col.InsertOne(ctx, u); err != nil {
		if isDuplicateKey(err) {
			return services.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id bson.ObjectID, upd model.ProfileUpdate) (*model.User, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Username != "" {
		set["username"] = upd.Username
	}
	if upd.Email != "" {
		set["email"] = upd.Email
	}
	if upd.Bio != "" {
		set["bio"] = upd.Bio
	}
	if upd.ProfilePicture != "" {
		set["profile_picture"] = upd.ProfilePicture
	}

	res := r.Col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var u model.User
	if err := res.Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// AddFollow applies both sides of the relation as independent $addToSet
// writes. Each side is idempotent, so one half failing leaves a state a
// retry fully repairs.
func (r *UserRepository) AddFollow(ctx context.Context, followerID, followeeID bson.ObjectID) error {
	if _, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": followerID},
		bson.M{"$addToSet": bson.M{"following": followeeID}},
	); err != nil {
		return err
	}
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": followeeID},
		bson.M{"$addToSet": bson.M{"followers": followerID}},
	)
	return err
}

func (r *UserRepository) RemoveFollow(ctx context.Context, followerID, followeeID bson.ObjectID) error {
	if _, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": followerID},
		bson.M{"$pull": bson.M{"following": followeeID}},
	); err != nil {
		return err
	}
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": followeeID},
		bson.M{"$pull": bson.M{"followers": followerID}},
	)
	return err
}

func (r *UserRepository) AddSavedRecipe(ctx context.Context, userID, recipeID bson.ObjectID) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"saved_recipes": recipeID}},
	)
	return err
}

func (r *UserRepository) RemoveSavedRecipe(ctx context.Context, userID, recipeID bson.ObjectID) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"saved_recipes": recipeID}},
	)
	return err
}

func (r *UserRepository) ListExcluding(ctx context.Context, exclude []bson.ObjectID) ([]model.User, error) {
	filter := bson.M{}
	if len(exclude) > 0 {
		filter["_id"] = bson.M{"$nin": exclude}
	}
	return r.find(ctx, filter)
}

func (r *UserRepository) find(ctx context.Context, filter bson.M) ([]model.User, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []model.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
