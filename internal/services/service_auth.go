package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"recipeshare/internal/apperr"
	"recipeshare/internal/authctx"
	"recipeshare/model"
)

const bcryptCost = 10

type AuthService struct {
	Users  UserStore
	Secret string
}

func NewAuthService(users UserStore, secret string) *AuthService {
	return &AuthService{Users: users, Secret: secret}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, apperr.New(apperr.KindValidation, "username, email and password are required")
	}
	role := in.Role
	if role == "" {
		role = model.RoleUser
	}
	if role != model.RoleUser && role != model.RoleAdmin {
		return nil, apperr.New(apperr.KindValidation, "role must be 'user' or 'admin'")
	}

	existing, err := s.Users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "user lookup failed", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, "user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "password hashing failed", err)
	}

	user := &model.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.Users.Insert(ctx, user); err != nil {
		// The unique email index closes the race the pre-check leaves open.
		if errors.Is(err, ErrDuplicateKey) {
			return nil, apperr.New(apperr.KindConflict, "user already exists")
		}
		return nil, apperr.Wrap(apperr.KindUnavailable, "user insert failed", err)
	}
	return user, nil
}

// Login verifies credentials and issues a token. Missing account and wrong
// password share one message so the response does not leak which it was.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, apperr.New(apperr.KindValidation, "email and password are required")
	}

	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperr.Wrap(apperr.KindUnavailable, "user lookup failed", err)
	}
	if user == nil {
		return "", nil, apperr.New(apperr.KindForbidden, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.New(apperr.KindForbidden, "invalid credentials")
	}

	token, err := authctx.SignToken(s.Secret, user)
	if err != nil {
		return "", nil, apperr.Wrap(apperr.KindUnavailable, "token signing failed", err)
	}
	return token, user, nil
}

func (s *AuthService) Profile(ctx context.Context, id authctx.Identity) (*model.User, error) {
	user, err := s.Users.FindByID(ctx, id.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "user lookup failed", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	return user, nil
}
