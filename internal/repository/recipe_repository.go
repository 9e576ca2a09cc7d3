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

type RecipeRepository struct {
	Col *mongo.Collection
}

func NewRecipeRepository(db *mongo.Database) *RecipeRepository {
	return &RecipeRepository{Col: db.Collection("recipes")}
}

func (r *RecipeRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Recipe, error) {
	var rec model.Recipe
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *RecipeRepository) FindByTitle(ctx context.Context, title string) (*model.Recipe, error) {
	var rec model.Recipe
	if err := r.Col.FindOne(ctx, bson.M{"title": title}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *RecipeRepository) Insert(ctx context.Context, rec *model.Recipe) error {
	now := time.Now().UTC()
	rec.ID = bson.NewObjectID()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.Version = 1
	_, err := r.Col.InsertOne(ctx, rec)
	return err
}

// Save writes the whole document back, conditioned on the version read. A
// write that raced with someone else matches nothing and surfaces as
// services.ErrVersionConflict instead of silently losing their update.
func (r *RecipeRepository) Save(ctx context.Context, rec *model.Recipe) error {
	now := time.Now().UTC()
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": rec.ID, "version": rec.Version},
		bson.M{
			"$set": bson.M{
				"title":          rec.Title,
				"ingredients":    rec.Ingredients,
				"instructions":   rec.Instructions,
				"cooking_time":   rec.CookingTime,
				"servings":       rec.Servings,
				"image":          rec.Image,
				"video":          rec.Video,
				"ratings":        rec.Ratings,
				"comments":       rec.Comments,
				"likes":          rec.Likes,
				"average_rating": rec.AverageRating,
				"updated_at":     now,
			},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return services.ErrVersionConflict
	}
	rec.Version++
	rec.UpdatedAt = now
	return nil
}

func (r *RecipeRepository) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *RecipeRepository) List(ctx context.Context) ([]model.Recipe, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *RecipeRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Recipe, error) {
	return r.find(ctx, bson.M{"user": owner}, nil)
}

func (r *RecipeRepository) ListByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.Recipe, error) {
	if len(ids) == 0 {
		return []model.Recipe{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (r *RecipeRepository) TopRated(ctx context.Context, limit int64) ([]model.Recipe, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "average_rating", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *RecipeRepository) SearchByIngredient(ctx context.Context, ingredient string) ([]model.Recipe, error) {
	filter := bson.M{"ingredients": bson.M{"$regex": ingredient, "$options": "i"}}
	return r.find(ctx, filter, nil)
}

func (r *RecipeRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]model.Recipe, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.Col.Find(ctx, filter, opts)
	} else {
		cur, err = r.Col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	recipes := []model.Recipe{}
	if err := cur.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}
