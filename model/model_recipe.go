package model

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Rating struct {
	UserID bson.ObjectID `json:"userId" bson:"user"`
	Value  int           `json:"value"  bson:"value"`
}

type Comment struct {
	ID        bson.ObjectID `json:"id"        bson:"_id"`
	UserID    bson.ObjectID `json:"userId"    bson:"user"`
	Text      string        `json:"text"      bson:"text"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}

type Recipe struct {
	ID            bson.ObjectID   `json:"id"            bson:"_id,omitempty"`
	Title         string          `json:"title"         bson:"title"`
	Ingredients   []string        `json:"ingredients"   bson:"ingredients"`
	Instructions  string          `json:"instructions"  bson:"instructions"`
	CookingTime   string          `json:"cookingTime"   bson:"cooking_time"`
	Servings      int             `json:"servings"      bson:"servings"`
	Image         string          `json:"image"         bson:"image"`
	Video         string          `json:"video"         bson:"video"`
	UserID        bson.ObjectID   `json:"userId"        bson:"user"`
	Ratings       []Rating        `json:"ratings"       bson:"ratings"`
	Comments      []Comment       `json:"comments"      bson:"comments"`
	Likes         []bson.ObjectID `json:"likes"         bson:"likes"`
	AverageRating float64         `json:"averageRating" bson:"average_rating"`
	Version       int64           `json:"-"             bson:"version"`
	CreatedAt     time.Time       `json:"createdAt"     bson:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt"     bson:"updated_at"`
}

// SetRating records value for userID, replacing an existing entry so a
// resubmission never duplicates. The persisted average is refreshed from the
// full list on every write.
func (r *Recipe) SetRating(userID bson.ObjectID, value int) {
	for i := range r.Ratings {
		if r.Ratings[i].UserID == userID {
			r.Ratings[i].Value = value
			r.AverageRating = r.ratingAverage()
			return
		}
	}
	r.Ratings = append(r.Ratings, Rating{UserID: userID, Value: value})
	r.AverageRating = r.ratingAverage()
}

func (r *Recipe) ratingAverage() float64 {
	if len(r.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, rt := range r.Ratings {
		sum += rt.Value
	}
	avg := float64(sum) / float64(len(r.Ratings))
	return math.Round(avg*100) / 100
}

func (r *Recipe) CommentByID(commentID bson.ObjectID) *Comment {
	for i := range r.Comments {
		if r.Comments[i].ID == commentID {
			return &r.Comments[i]
		}
	}
	return nil
}

func (r *Recipe) RemoveComment(commentID bson.ObjectID) bool {
	for i := range r.Comments {
		if r.Comments[i].ID == commentID {
			r.Comments = append(r.Comments[:i], r.Comments[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Recipe) LikedBy(userID bson.ObjectID) bool {
	for _, id := range r.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleLike flips userID's membership in the likers set and reports the
// resulting state.
func (r *Recipe) ToggleLike(userID bson.ObjectID) (liked bool) {
	for i, id := range r.Likes {
		if id == userID {
			r.Likes = append(r.Likes[:i], r.Likes[i+1:]...)
			return false
		}
	}
	r.Likes = append(r.Likes, userID)
	return true
}
