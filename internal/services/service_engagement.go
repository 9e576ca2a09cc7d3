package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"recipeshare/internal/apperr"
	"recipeshare/internal/authctx"
	"recipeshare/model"
)

const (
	minRating = 1
	maxRating = 5

	// Attempts per engagement write before giving up on the CAS loop.
	saveRetries = 3
)

// EngagementService owns every mutation of a recipe's ratings, comments and
// likes. The recipe document is the unit of consistency: each operation reads
// it, mutates a local copy and writes back conditioned on the version it
// read, retrying when someone else got there first.
type EngagementService struct {
	Recipes RecipeStore
}

func NewEngagementService(recipes RecipeStore) *EngagementService {
	return &EngagementService{Recipes: recipes}
}

type RatingSummary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

type LikeState struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// Rate records or replaces the caller's rating and refreshes the persisted
// average in the same write.
func (s *EngagementService) Rate(ctx context.Context, id authctx.Identity, recipeID bson.ObjectID, value int) (*RatingSummary, error) {
	if value < minRating || value > maxRating {
		return nil, apperr.Newf(apperr.KindValidation, "rating must be between %d and %d", minRating, maxRating)
	}

	rec, err := s.mutate(ctx, recipeID, func(r *model.Recipe) error {
		r.SetRating(id.UserID, value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &RatingSummary{Count: len(rec.Ratings), Average: rec.AverageRating}, nil
}

func (s *EngagementService) AddComment(ctx context.Context, id authctx.Identity, recipeID bson.ObjectID, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.New(apperr.KindValidation, "comment text is required")
	}

	comment := model.Comment{
		ID:        bson.NewObjectID(),
		UserID:    id.UserID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.mutate(ctx, recipeID, func(r *model.Recipe) error {
		r.Comments = append(r.Comments, comment)
		return nil
	}); err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment. Only the author or an admin may do so;
// this is the single engagement mutation gated beyond authentication.
func (s *EngagementService) DeleteComment(ctx context.Context, id authctx.Identity, recipeID, commentID bson.ObjectID) error {
	_, err := s.mutate(ctx, recipeID, func(r *model.Recipe) error {
		c := r.CommentByID(commentID)
		if c == nil {
			return apperr.New(apperr.KindNotFound, "comment not found")
		}
		if c.UserID != id.UserID && !id.IsAdmin() {
			return apperr.New(apperr.KindForbidden, "only the author or an admin can delete a comment")
		}
		r.RemoveComment(commentID)
		return nil
	})
	return err
}

// ToggleLike flips the caller's membership in the likers set. The CAS write
// keeps two concurrent toggles from the same user from both applying the
// same direction.
func (s *EngagementService) ToggleLike(ctx context.Context, id authctx.Identity, recipeID bson.ObjectID) (*LikeState, error) {
	var liked bool
	rec, err := s.mutate(ctx, recipeID, func(r *model.Recipe) error {
		liked = r.ToggleLike(id.UserID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &LikeState{Likes: len(rec.Likes), Liked: liked}, nil
}

// mutate runs the read-modify-write loop. apply sees a fresh copy on every
// attempt, so it must be side-effect free beyond the recipe itself.
func (s *EngagementService) mutate(ctx context.Context, recipeID bson.ObjectID, apply func(*model.Recipe) error) (*model.Recipe, error) {
	for attempt := 0; attempt < saveRetries; attempt++ {
		rec, err := s.Recipes.FindByID(ctx, recipeID)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindUnavailable, "recipe lookup failed", err)
		}
		if rec == nil {
			return nil, apperr.New(apperr.KindNotFound, "recipe not found")
		}

		if err := apply(rec); err != nil {
			return nil, err
		}

		err = s.Recipes.Save(ctx, rec)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return nil, apperr.Wrap(apperr.KindUnavailable, "recipe write failed", err)
		}
	}
	return nil, apperr.New(apperr.KindUnavailable, "recipe is being modified, try again")
}
