package user

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-cms/inkwell/domain"
	"github.com/inkwell-cms/inkwell/internal/security"
)

// Service handles registration and login for dashboard callers.
type Service struct {
	users  domain.UserRepository
	secret []byte
	ttl    time.Duration
}

var _ domain.UserUsecase = (*Service)(nil)

func NewService(users domain.UserRepository, secret []byte, ttl time.Duration) *Service {
	return &Service{
		users:  users,
		secret: secret,
		ttl:    ttl,
	}
}

func (s *Service) Register(ctx context.Context, displayName, username, email, password string) error {
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := &domain.User{
		DisplayName: displayName,
		Username:    username,
		Email:       email,
		Password:    string(hashed),
		Role:        security.RoleAuthor,
	}
	return s.users.Insert(ctx, u)
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", domain.ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		logrus.WithField("component", "UserService").Warnf("failed login attempt for %q", username)
		return "", domain.ErrBadParamInput
	}

	return security.SignToken(s.secret, domain.Principal{Name: u.Username, Role: u.Role}, s.ttl)
}
