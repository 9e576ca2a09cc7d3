package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"recipeshare/internal/apperr"
	"recipeshare/internal/authctx"
	"recipeshare/model"
)

// SocialService maintains the follower/following relation. Both sides of a
// follow are written as independent idempotent set operations, so repeating
// a partially applied follow or unfollow converges instead of corrupting.
type SocialService struct {
	Users UserStore
}

func NewSocialService(users UserStore) *SocialService {
	return &SocialService{Users: users}
}

// UserSummary is the public view of a user in follower listings. Password
// and other private fields never leave the service.
type UserSummary struct {
	ID             bson.ObjectID `json:"id"`
	Username       string        `json:"username"`
	ProfilePicture string        `json:"profilePicture"`
}

func summarize(users []model.User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummary{
			ID:             u.ID,
			Username:       u.Username,
			ProfilePicture: u.ProfilePicture,
		})
	}
	return out
}

// Follow adds target to the caller's following set and the caller to the
// target's followers set. Following someone twice is a no-op rather than a
// conflict, which keeps retries safe after a partial failure.
func (s *SocialService) Follow(ctx context.Context, id authctx.Identity, targetID bson.ObjectID) error {
	if targetID == id.UserID {
		return apperr.New(apperr.KindValidation, "you cannot follow yourself")
	}

	target, err := s.Users.FindByID(ctx, targetID)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "user lookup failed", err)
	}
	if target == nil {
		return apperr.New(apperr.KindNotFound, "user not found")
	}

	if err := s.Users.AddFollow(ctx, id.UserID, targetID); err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "follow write failed", err)
	}
	return nil
}

// Unfollow is the symmetric removal. Unfollowing someone you do not follow
// is a no-op.
func (s *SocialService) Unfollow(ctx context.Context, id authctx.Identity, targetID bson.ObjectID) error {
	if targetID == id.UserID {
		return apperr.New(apperr.KindValidation, "you cannot unfollow yourself")
	}

	target, err := s.Users.FindByID(ctx, targetID)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "user lookup failed", err)
	}
	if target == nil {
		return apperr.New(apperr.KindNotFound, "user not found")
	}

	if err := s.Users.RemoveFollow(ctx, id.UserID, targetID); err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "unfollow write failed", err)
	}
	return nil
}

func (s *SocialService) ListFollowing(ctx context.Context, id authctx.Identity) ([]UserSummary, error) {
	me, err := s.self(ctx, id)
	if err != nil {
		return nil, err
	}
	users, err := s.Users.FindByIDs(ctx, me.Following)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "user lookup failed", err)
	}
	return summarize(users), nil
}

func (s *SocialService) ListFollowers(ctx context.Context, id authctx.Identity) ([]UserSummary, error) {
	me, err := s.self(ctx, id)
	if err != nil {
		return nil, err
	}
	users, err := s.Users.FindByIDs(ctx, me.Followers)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "user lookup failed", err)
	}
	return summarize(users), nil
}

// ListDiscoverable returns everyone the caller has no relation with yet:
// all users minus the caller, their following and their followers.
func (s *SocialService) ListDiscoverable(ctx context.Context, id authctx.Identity) ([]UserSummary, error) {
	me, err := s.self(ctx, id)
	if err != nil {
		return nil, err
	}

	exclude := make([]bson.ObjectID, 0, 1+len(me.Following)+len(me.Followers))
	exclude = append(exclude, me.ID)
	exclude = append(exclude, me.Following...)
	exclude = append(exclude, me.Followers...)

	users, err := s.Users.ListExcluding(ctx, exclude)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "user listing failed", err)
	}
	return summarize(users), nil
}

func (s *SocialService) self(ctx context.Context, id authctx.Identity) (*model.User, error) {
	me, err := s.Users.FindByID(ctx, id.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "user lookup failed", err)
	}
	if me == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	return me, nil
}
