package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"recipeshare/internal/apperr"
	"recipeshare/internal/authctx"
	"recipeshare/model"
)

// UserService covers profile updates and the saved-recipes bookmark set.
type UserService struct {
	Users   UserStore
	Recipes RecipeStore
}

func NewUserService(users UserStore, recipes RecipeStore) *UserService {
	return &UserService{Users: users, Recipes: recipes}
}

func (s *UserService) UpdateProfile(ctx context.Context, id authctx.Identity, upd model.ProfileUpdate) (*model.User, error) {
	user, err := s.Users.UpdateProfile(ctx, id.UserID, upd)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "profile update failed", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	return user, nil
}

// SaveRecipe bookmarks a recipe. Saving twice is a no-op ($addToSet).
func (s *UserService) SaveRecipe(ctx context.Context, id authctx.Identity, recipeID bson.ObjectID) error {
	rec, err := s.Recipes.FindByID(ctx, recipeID)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "recipe lookup failed", err)
	}
	if rec == nil {
		return apperr.New(apperr.KindNotFound, "recipe not found")
	}

	if err := s.Users.AddSavedRecipe(ctx, id.UserID, recipeID); err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "save write failed", err)
	}
	return nil
}

func (s *UserService) UnsaveRecipe(ctx context.Context, id authctx.Identity, recipeID bson.ObjectID) error {
	if err := s.Users.RemoveSavedRecipe(ctx, id.UserID, recipeID); err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "unsave write failed", err)
	}
	return nil
}

func (s *UserService) ListSaved(ctx context.Context, id authctx.Identity) ([]model.Recipe, error) {
	me, err := s.Users.FindByID(ctx, id.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "user lookup failed", err)
	}
	if me == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}

	recipes, err := s.Recipes.ListByIDs(ctx, me.SavedRecipes)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "recipe lookup failed", err)
	}
	return recipes, nil
}
