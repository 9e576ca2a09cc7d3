package services

import (
	"context"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"recipeshare/model"
)

// fakeRecipeStore keeps recipes in a map and mimics the conditional write:
// Save only applies when the in-memory version matches the one the caller
// read, bumping it on success. conflictNext forces the next n Saves to fail
// with ErrVersionConflict without applying, to exercise the retry loop.
type fakeRecipeStore struct {
	recipes      map[bson.ObjectID]model.Recipe
	conflictNext int
	findErr      error
	saveErr      error
}

func newFakeRecipeStore() *fakeRecipeStore {
	return &fakeRecipeStore{recipes: map[bson.ObjectID]model.Recipe{}}
}

func copyRecipe(r model.Recipe) model.Recipe {
	c := r
	c.Ingredients = append([]string(nil), r.Ingredients...)
	c.Ratings = append([]model.Rating(nil), r.Ratings...)
	c.Comments = append([]model.Comment(nil), r.Comments...)
	c.Likes = append([]bson.ObjectID(nil), r.Likes...)
	return c
}

func (f *fakeRecipeStore) put(r model.Recipe) model.Recipe {
	if r.ID.IsZero() {
		r.ID = bson.NewObjectID()
	}
	if r.Version == 0 {
		r.Version = 1
	}
	f.recipes[r.ID] = copyRecipe(r)
	return r
}

func (f *fakeRecipeStore) FindByID(_ context.Context, id bson.ObjectID) (*model.Recipe, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	r, ok := f.recipes[id]
	if !ok {
		return nil, nil
	}
	c := copyRecipe(r)
	return &c, nil
}

func (f *fakeRecipeStore) FindByTitle(_ context.Context, title string) (*model.Recipe, error) {
	for _, r := range f.recipes {
		if r.Title == title {
			c := copyRecipe(r)
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeRecipeStore) Insert(_ context.Context, r *model.Recipe) error {
	r.ID = bson.NewObjectID()
	r.Version = 1
	f.recipes[r.ID] = copyRecipe(*r)
	return nil
}

func (f *fakeRecipeStore) Save(_ context.Context, r *model.Recipe) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.conflictNext > 0 {
		f.conflictNext--
		return ErrVersionConflict
	}
	stored, ok := f.recipes[r.ID]
	if !ok || stored.Version != r.Version {
		return ErrVersionConflict
	}
	r.Version++
	f.recipes[r.ID] = copyRecipe(*r)
	return nil
}

func (f *fakeRecipeStore) Delete(_ context.Context, id bson.ObjectID) (bool, error) {
	if _, ok := f.recipes[id]; !ok {
		return false, nil
	}
	delete(f.recipes, id)
	return true, nil
}

func (f *fakeRecipeStore) List(_ context.Context) ([]model.Recipe, error) {
	out := []model.Recipe{}
	for _, r := range f.recipes {
		out = append(out, copyRecipe(r))
	}
	return out, nil
}

func (f *fakeRecipeStore) ListByOwner(_ context.Context, owner bson.ObjectID) ([]model.Recipe, error) {
	out := []model.Recipe{}
	for _, r := range f.recipes {
		if r.UserID == owner {
			out = append(out, copyRecipe(r))
		}
	}
	return out, nil
}

func (f *fakeRecipeStore) ListByIDs(_ context.Context, ids []bson.ObjectID) ([]model.Recipe, error) {
	out := []model.Recipe{}
	for _, id := range ids {
		if r, ok := f.recipes[id]; ok {
			out = append(out, copyRecipe(r))
		}
	}
	return out, nil
}

func (f *fakeRecipeStore) TopRated(_ context.Context, limit int64) ([]model.Recipe, error) {
	all, _ := f.List(context.Background())
	sort.Slice(all, func(i, j int) bool { return all[i].AverageRating > all[j].AverageRating })
	if int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeRecipeStore) SearchByIngredient(_ context.Context, ingredient string) ([]model.Recipe, error) {
	out := []model.Recipe{}
	for _, r := range f.recipes {
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing), strings.ToLower(ingredient)) {
				out = append(out, copyRecipe(r))
				break
			}
		}
	}
	return out, nil
}

type fakeUserStore struct {
	users   map[bson.ObjectID]model.User
	findErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[bson.ObjectID]model.User{}}
}

func copyUser(u model.User) model.User {
	c := u
	c.Followers = append([]bson.ObjectID(nil), u.Followers...)
	c.Following = append([]bson.ObjectID(nil), u.Following...)
	c.SavedRecipes = append([]bson.ObjectID(nil), u.SavedRecipes...)
	return c
}

func (f *fakeUserStore) put(u model.User) model.User {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	f.users[u.ID] = copyUser(u)
	return u
}

func (f *fakeUserStore) FindByID(_ context.Context, id bson.ObjectID) (*model.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	c := copyUser(u)
	return &c, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			c := copyUser(u)
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByIDs(_ context.Context, ids []bson.ObjectID) ([]model.User, error) {
	out := []model.User{}
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, copyUser(u))
		}
	}
	return out, nil
}

func (f *fakeUserStore) Insert(_ context.Context, u *model.User) error {
	u.ID = bson.NewObjectID()
	f.users[u.ID] = copyUser(*u)
	return nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, id bson.ObjectID, upd model.ProfileUpdate) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	if upd.Username != "" {
		u.Username = upd.Username
	}
	if upd.Email != "" {
		u.Email = upd.Email
	}
	if upd.Bio != "" {
		u.Bio = upd.Bio
	}
	if upd.ProfilePicture != "" {
		u.ProfilePicture = upd.ProfilePicture
	}
	f.users[id] = u
	c := copyUser(u)
	return &c, nil
}

func addToSet(set []bson.ObjectID, id bson.ObjectID) []bson.ObjectID {
	for _, v := range set {
		if v == id {
			return set
		}
	}
	return append(set, id)
}

func pull(set []bson.ObjectID, id bson.ObjectID) []bson.ObjectID {
	out := make([]bson.ObjectID, 0, len(set))
	for _, v := range set {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func (f *fakeUserStore) AddFollow(_ context.Context, followerID, followeeID bson.ObjectID) error {
	if follower, ok := f.users[followerID]; ok {
		follower.Following = addToSet(follower.Following, followeeID)
		f.users[followerID] = follower
	}
	if followee, ok := f.users[followeeID]; ok {
		followee.Followers = addToSet(followee.Followers, followerID)
		f.users[followeeID] = followee
	}
	return nil
}

func (f *fakeUserStore) RemoveFollow(_ context.Context, followerID, followeeID bson.ObjectID) error {
	if follower, ok := f.users[followerID]; ok {
		follower.Following = pull(follower.Following, followeeID)
		f.users[followerID] = follower
	}
	if followee, ok := f.users[followeeID]; ok {
		followee.Followers = pull(followee.Followers, followerID)
		f.users[followeeID] = followee
	}
	return nil
}

func (f *fakeUserStore) AddSavedRecipe(_ context.Context, userID, recipeID bson.ObjectID) error {
	if u, ok := f.users[userID]; ok {
		u.SavedRecipes = addToSet(u.SavedRecipes, recipeID)
		f.users[userID] = u
	}
	return nil
}

func (f *fakeUserStore) RemoveSavedRecipe(_ context.Context, userID, recipeID bson.ObjectID) error {
	if u, ok := f.users[userID]; ok {
		u.SavedRecipes = pull(u.SavedRecipes, recipeID)
		f.users[userID] = u
	}
	return nil
}

func (f *fakeUserStore) ListExcluding(_ context.Context, exclude []bson.ObjectID) ([]model.User, error) {
	skip := map[bson.ObjectID]bool{}
	for _, id := range exclude {
		skip[id] = true
	}
	out := []model.User{}
	for _, u := range f.users {
		if !skip[u.ID] {
			out = append(out, copyUser(u))
		}
	}
	return out, nil
}
