package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"recipeshare/internal/apperr"
	"recipeshare/internal/authctx"
	"recipeshare/model"
)

const defaultRecipeImage = "https://via.placeholder.com/150"

type RecipeService struct {
	Recipes RecipeStore
}

func NewRecipeService(recipes RecipeStore) *RecipeService {
	return &RecipeService{Recipes: recipes}
}

type RecipeInput struct {
	Title        string
	Ingredients  []string
	Instructions string
	CookingTime  string
	Servings     int
	Image        string
	Video        string
}

func (s *RecipeService) Create(ctx context.Context, id authctx.Identity, in RecipeInput) (*model.Recipe, error) {
	if strings.TrimSpace(in.Title) == "" || len(in.Ingredients) == 0 || strings.TrimSpace(in.Instructions) == "" {
		return nil, apperr.New(apperr.KindValidation, "title, ingredients and instructions are required")
	}

	existing, err := s.Recipes.FindByTitle(ctx, in.Title)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "recipe lookup failed", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, "recipe with this title already exists")
	}

	image := in.Image
	if image == "" {
		image = defaultRecipeImage
	}

	rec := &model.Recipe{
		Title:        in.Title,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		CookingTime:  in.CookingTime,
		Servings:     in.Servings,
		Image:        image,
		Video:        in.Video,
		UserID:       id.UserID,
		Ratings:      []model.Rating{},
		Comments:     []model.Comment{},
		Likes:        []bson.ObjectID{},
	}
	if err := s.Recipes.Insert(ctx, rec); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "recipe insert failed", err)
	}
	return rec, nil
}

func (s *RecipeService) List(ctx context.Context) ([]model.Recipe, error) {
	recipes, err := s.Recipes.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "recipe listing failed", err)
	}
	return recipes, nil
}

func (s *RecipeService) Get(ctx context.Context, recipeID bson.ObjectID) (*model.Recipe, error) {
	rec, err := s.Recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "recipe lookup failed", err)
	}
	if rec == nil {
		return nil, apperr.New(apperr.KindNotFound, "recipe not found")
	}
	return rec, nil
}

func (s *RecipeService) ListByOwner(ctx context.Context, id authctx.Identity) ([]model.Recipe, error) {
	recipes, err := s.Recipes.ListByOwner(ctx, id.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "recipe listing failed", err)
	}
	return recipes, nil
}

// Update rewrites recipe fields. Only the owner may update; ratings,
// comments and likes are untouched so engagement survives edits.
func (s *RecipeService) Update(ctx context.Context, id authctx.Identity, recipeID bson.ObjectID, in RecipeInput) (*model.Recipe, error) {
	rec, err := s.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if rec.UserID != id.UserID {
		return nil, apperr.New(apperr.KindForbidden, "only the owner can update a recipe")
	}

	if in.Title != "" {
		rec.Title = in.Title
	}
	if len(in.Ingredients) > 0 {
		rec.Ingredients = in.Ingredients
	}
	if in.Instructions != "" {
		rec.Instructions = in.Instructions
	}
	if in.CookingTime != "" {
		rec.CookingTime = in.CookingTime
	}
	if in.Servings > 0 {
		rec.Servings = in.Servings
	}
	if in.Image != "" {
		rec.Image = in.Image
	}
	if in.Video != "" {
		rec.Video = in.Video
	}

	if err := s.Recipes.Save(ctx, rec); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "recipe write failed", err)
	}
	return rec, nil
}

func (s *RecipeService) Delete(ctx context.Context, id authctx.Identity, recipeID bson.ObjectID) error {
	rec, err := s.Get(ctx, recipeID)
	if err != nil {
		return err
	}
	if rec.UserID != id.UserID && !id.IsAdmin() {
		return apperr.New(apperr.KindForbidden, "only the owner or an admin can delete a recipe")
	}

	ok, err := s.Recipes.Delete(ctx, recipeID)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "recipe delete failed", err)
	}
	if !ok {
		return apperr.New(apperr.KindNotFound, "recipe not found")
	}
	return nil
}

func (s *RecipeService) TopRated(ctx context.Context, limit int64) ([]model.Recipe, error) {
	if limit <= 0 {
		limit = 10
	}
	recipes, err := s.Recipes.TopRated(ctx, limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "recipe listing failed", err)
	}
	return recipes, nil
}

func (s *RecipeService) Search(ctx context.Context, ingredient string) ([]model.Recipe, error) {
	if strings.TrimSpace(ingredient) == "" {
		return nil, apperr.New(apperr.KindValidation, "ingredient query is required")
	}
	recipes, err := s.Recipes.SearchByIngredient(ctx, ingredient)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "recipe search failed", err)
	}
	return recipes, nil
}
