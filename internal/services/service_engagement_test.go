package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"recipeshare/internal/apperr"
	"recipeshare/internal/authctx"
	"recipeshare/model"
)

func ident(id bson.ObjectID) authctx.Identity {
	return authctx.Identity{UserID: id, Role: model.RoleUser}
}

func adminIdent(id bson.ObjectID) authctx.Identity {
	return authctx.Identity{UserID: id, Role: model.RoleAdmin}
}

func seedRecipe(store *fakeRecipeStore) model.Recipe {
	return store.put(model.Recipe{
		Title:        "Pad Thai",
		Ingredients:  []string{"rice noodles", "tamarind"},
		Instructions: "stir fry",
		UserID:       bson.NewObjectID(),
	})
}

func TestRate(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects out of range values", func(t *testing.T) {
		store := newFakeRecipeStore()
		svc := NewEngagementService(store)
		rec := seedRecipe(store)

		for _, v := range []int{0, 6, -1, 100} {
			_, err := svc.Rate(ctx, ident(bson.NewObjectID()), rec.ID, v)
			if !apperr.IsKind(err, apperr.KindValidation) {
				t.Errorf("Rate(%d): got %v, want validation error", v, err)
			}
		}
	})

	t.Run("missing recipe is not found", func(t *testing.T) {
		svc := NewEngagementService(newFakeRecipeStore())
		_, err := svc.Rate(ctx, ident(bson.NewObjectID()), bson.NewObjectID(), 3)
		if !apperr.IsKind(err, apperr.KindNotFound) {
			t.Errorf("got %v, want not found", err)
		}
	})

	t.Run("resubmission replaces instead of duplicating", func(t *testing.T) {
		store := newFakeRecipeStore()
		svc := NewEngagementService(store)
		rec := seedRecipe(store)
		u := bson.NewObjectID()

		if _, err := svc.Rate(ctx, ident(u), rec.ID, 4); err != nil {
			t.Fatalf("first rate: %v", err)
		}
		summary, err := svc.Rate(ctx, ident(u), rec.ID, 2)
		if err != nil {
			t.Fatalf("second rate: %v", err)
		}
		if summary.Count != 1 {
			t.Errorf("count = %d, want 1", summary.Count)
		}
		if summary.Average != 2.0 {
			t.Errorf("average = %v, want 2.0", summary.Average)
		}

		stored, _ := store.FindByID(ctx, rec.ID)
		if len(stored.Ratings) != 1 || stored.Ratings[0].Value != 2 {
			t.Errorf("stored ratings = %+v, want single entry with value 2", stored.Ratings)
		}
	})

	t.Run("average tracks the arithmetic mean", func(t *testing.T) {
		store := newFakeRecipeStore()
		svc := NewEngagementService(store)
		rec := seedRecipe(store)
		u1, u2 := bson.NewObjectID(), bson.NewObjectID()

		s, err := svc.Rate(ctx, ident(u1), rec.ID, 4)
		if err != nil {
			t.Fatal(err)
		}
		if s.Count != 1 || s.Average != 4.0 {
			t.Errorf("after u1=4: %+v, want {1 4}", s)
		}

		s, err = svc.Rate(ctx, ident(u2), rec.ID, 2)
		if err != nil {
			t.Fatal(err)
		}
		if s.Count != 2 || s.Average != 3.0 {
			t.Errorf("after u2=2: %+v, want {2 3}", s)
		}

		s, err = svc.Rate(ctx, ident(u1), rec.ID, 5)
		if err != nil {
			t.Fatal(err)
		}
		if s.Count != 2 || s.Average != 3.5 {
			t.Errorf("after u1 re-rates 5: %+v, want {2 3.5}", s)
		}
	})

	t.Run("persisted average survives the write", func(t *testing.T) {
		store := newFakeRecipeStore()
		svc := NewEngagementService(store)
		rec := seedRecipe(store)

		ratings := []int{5, 3, 4}
		for _, v := range ratings {
			if _, err := svc.Rate(ctx, ident(bson.NewObjectID()), rec.ID, v); err != nil {
				t.Fatal(err)
			}
		}
		stored, _ := store.FindByID(ctx, rec.ID)
		if stored.AverageRating != 4.0 {
			t.Errorf("persisted average = %v, want 4.0", stored.AverageRating)
		}
	})

	t.Run("retries through a lost race", func(t *testing.T) {
		store := newFakeRecipeStore()
		svc := NewEngagementService(store)
		rec := seedRecipe(store)
		store.conflictNext = 1

		s, err := svc.Rate(ctx, ident(bson.NewObjectID()), rec.ID, 5)
		if err != nil {
			t.Fatalf("expected retry to succeed, got %v", err)
		}
		if s.Count != 1 || s.Average != 5.0 {
			t.Errorf("summary = %+v, want {1 5}", s)
		}
	})

	t.Run("store failures surface as unavailable", func(t *testing.T) {
		store := newFakeRecipeStore()
		svc := NewEngagementService(store)
		rec := seedRecipe(store)

		store.findErr = errors.New("connection reset")
		if _, err := svc.Rate(ctx, ident(bson.NewObjectID()), rec.ID, 3); !apperr.IsKind(err, apperr.KindUnavailable) {
			t.Errorf("read failure: got %v, want unavailable", err)
		}

		store.findErr = nil
		store.saveErr = errors.New("write timeout")
		if _, err := svc.Rate(ctx, ident(bson.NewObjectID()), rec.ID, 3); !apperr.IsKind(err, apperr.KindUnavailable) {
			t.Errorf("write failure: got %v, want unavailable", err)
		}
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		store := newFakeRecipeStore()
		svc := NewEngagementService(store)
		rec := seedRecipe(store)
		store.conflictNext = saveRetries

		_, err := svc.Rate(ctx, ident(bson.NewObjectID()), rec.ID, 5)
		if !apperr.IsKind(err, apperr.KindUnavailable) {
			t.Errorf("got %v, want unavailable", err)
		}
	})
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects blank text", func(t *testing.T) {
		store := newFakeRecipeStore()
		svc := NewEngagementService(store)
		rec := seedRecipe(store)

		for _, text := range []string{"", "   ", "\t\n"} {
			_, err := svc.AddComment(ctx, ident(bson.NewObjectID()), rec.ID, text)
			if !apperr.IsKind(err, apperr.KindValidation) {
				t.Errorf("AddComment(%q): got %v, want validation error", text, err)
			}
		}
	})

	t.Run("appends with fresh id and timestamp", func(t *testing.T) {
		store := newFakeRecipeStore()
		svc := NewEngagementService(store)
		rec := seedRecipe(store)
		u := bson.NewObjectID()

		c, err := svc.AddComment(ctx, ident(u), rec.ID, "looks great")
		if err != nil {
			t.Fatal(err)
		}
		if c.ID.IsZero() {
			t.Error("comment id not generated")
		}
		if c.UserID != u {
			t.Error("comment author is not the caller")
		}
		if c.CreatedAt.IsZero() {
			t.Error("comment timestamp not set")
		}

		stored, _ := store.FindByID(ctx, rec.ID)
		if len(stored.Comments) != 1 || stored.Comments[0].ID != c.ID {
			t.Errorf("stored comments = %+v", stored.Comments)
		}
	})

	t.Run("missing recipe is not found", func(t *testing.T) {
		svc := NewEngagementService(newFakeRecipeStore())
		_, err := svc.AddComment(ctx, ident(bson.NewObjectID()), bson.NewObjectID(), "hi")
		if !apperr.IsKind(err, apperr.KindNotFound) {
			t.Errorf("got %v, want not found", err)
		}
	})
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeRecipeStore, *EngagementService, model.Recipe, bson.ObjectID, *model.Comment) {
		t.Helper()
		store := newFakeRecipeStore()
		svc := NewEngagementService(store)
		rec := seedRecipe(store)
		author := bson.NewObjectID()
		c, err := svc.AddComment(ctx, ident(author), rec.ID, "my comment")
		if err != nil {
			t.Fatal(err)
		}
		return store, svc, rec, author, c
	}

	t.Run("author can delete", func(t *testing.T) {
		store, svc, rec, author, c := setup(t)
		if err := svc.DeleteComment(ctx, ident(author), rec.ID, c.ID); err != nil {
			t.Fatal(err)
		}
		stored, _ := store.FindByID(ctx, rec.ID)
		if len(stored.Comments) != 0 {
			t.Errorf("comments = %+v, want empty", stored.Comments)
		}
	})

	t.Run("admin can delete", func(t *testing.T) {
		store, svc, rec, _, c := setup(t)
		if err := svc.DeleteComment(ctx, adminIdent(bson.NewObjectID()), rec.ID, c.ID); err != nil {
			t.Fatal(err)
		}
		stored, _ := store.FindByID(ctx, rec.ID)
		if len(stored.Comments) != 0 {
			t.Errorf("comments = %+v, want empty", stored.Comments)
		}
	})

	t.Run("stranger is forbidden and nothing changes", func(t *testing.T) {
		store, svc, rec, _, c := setup(t)
		err := svc.DeleteComment(ctx, ident(bson.NewObjectID()), rec.ID, c.ID)
		if !apperr.IsKind(err, apperr.KindForbidden) {
			t.Errorf("got %v, want forbidden", err)
		}
		stored, _ := store.FindByID(ctx, rec.ID)
		if len(stored.Comments) != 1 {
			t.Errorf("comment list changed on forbidden delete: %+v", stored.Comments)
		}
	})

	t.Run("missing comment is not found", func(t *testing.T) {
		_, svc, rec, author, _ := setup(t)
		err := svc.DeleteComment(ctx, ident(author), rec.ID, bson.NewObjectID())
		if !apperr.IsKind(err, apperr.KindNotFound) {
			t.Errorf("got %v, want not found", err)
		}
	})
}

func TestToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("missing recipe is not found", func(t *testing.T) {
		svc := NewEngagementService(newFakeRecipeStore())
		_, err := svc.ToggleLike(ctx, ident(bson.NewObjectID()), bson.NewObjectID())
		if !apperr.IsKind(err, apperr.KindNotFound) {
			t.Errorf("got %v, want not found", err)
		}
	})

	t.Run("two toggles are an involution", func(t *testing.T) {
		store := newFakeRecipeStore()
		svc := NewEngagementService(store)
		rec := seedRecipe(store)
		u := bson.NewObjectID()

		first, err := svc.ToggleLike(ctx, ident(u), rec.ID)
		if err != nil {
			t.Fatal(err)
		}
		if !first.Liked || first.Likes != 1 {
			t.Errorf("first toggle = %+v, want {1 true}", first)
		}

		second, err := svc.ToggleLike(ctx, ident(u), rec.ID)
		if err != nil {
			t.Fatal(err)
		}
		if second.Liked || second.Likes != 0 {
			t.Errorf("second toggle = %+v, want {0 false}", second)
		}
	})

	t.Run("likes are a set across users", func(t *testing.T) {
		store := newFakeRecipeStore()
		svc := NewEngagementService(store)
		rec := seedRecipe(store)
		u1, u2 := bson.NewObjectID(), bson.NewObjectID()

		if _, err := svc.ToggleLike(ctx, ident(u1), rec.ID); err != nil {
			t.Fatal(err)
		}
		state, err := svc.ToggleLike(ctx, ident(u2), rec.ID)
		if err != nil {
			t.Fatal(err)
		}
		if state.Likes != 2 {
			t.Errorf("likes = %d, want 2", state.Likes)
		}

		// u1 unlikes, u2's like remains
		state, err = svc.ToggleLike(ctx, ident(u1), rec.ID)
		if err != nil {
			t.Fatal(err)
		}
		if state.Likes != 1 || state.Liked {
			t.Errorf("after u1 unlike = %+v, want {1 false}", state)
		}
	})
}
