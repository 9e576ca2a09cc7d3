package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             bson.ObjectID   `json:"id"             bson:"_id,omitempty"`
	Username       string          `json:"username"       bson:"username"`
	Email          string          `json:"email"          bson:"email"`
	Password       string          `json:"-"              bson:"password"`
	Role           string          `json:"role"           bson:"role"`
	Bio            string          `json:"bio,omitempty"  bson:"bio,omitempty"`
	ProfilePicture string          `json:"profilePicture" bson:"profile_picture,omitempty"`
	Followers      []bson.ObjectID `json:"followers"      bson:"followers"`
	Following      []bson.ObjectID `json:"following"      bson:"following"`
	SavedRecipes   []bson.ObjectID `json:"savedRecipes"   bson:"saved_recipes"`
	CreatedAt      time.Time       `json:"createdAt"      bson:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt"      bson:"updated_at"`
}

// IsFollowing reports whether the user already follows target.
func (u *User) IsFollowing(target bson.ObjectID) bool {
	for _, id := range u.Following {
		if id == target {
			return true
		}
	}
	return false
}

func (u *User) HasSaved(recipeID bson.ObjectID) bool {
	for _, id := range u.SavedRecipes {
		if id == recipeID {
			return true
		}
	}
	return false
}

// ProfileUpdate carries the fields a user may change on their own profile.
// Empty fields are left untouched.
type ProfileUpdate struct {
	Username       string
	Email          string
	Bio            string
	ProfilePicture string
}
