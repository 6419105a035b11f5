package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/fangearhq/fangear-api/internal/domain/entity"
	repo "github.com/fangearhq/fangear-api/internal/domain/repository"
	"github.com/fangearhq/fangear-api/pkg/helpers"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password. Callers must not be able to tell the two apart, otherwise
// the login route leaks which usernames exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Logger: logger}
}

type RegisterInput struct {
	Username   string
	Password   string
	Birthmonth string
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Register hashes the plaintext password and stores the new user.
// The plaintext never reaches the repository.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("password hash failed")
		}
		return nil, err
	}

	u := &entity.User{
		Username:   in.Username,
		Password:   hash,
		Birthmonth: in.Birthmonth,
		Address:    in.Address,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Country:    in.Country,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", in.Username).Error("user insert failed")
		}
		return nil, err
	}
	return u, nil
}

// Login looks the user up by username and compares the password against
// the stored bcrypt hash. Unknown user and mismatch return the same
// error; a store failure is propagated as-is so callers can answer
// with a server error instead of a credential rejection.
func (s *UserService) Login(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Error("user lookup failed")
		}
		return nil, err
	}
	if u == nil || !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
