package mocks

import (
	"context"
	"sync"

	"github.com/inkwell-cms/inkwell/domain"
)

// UserRepository is an in-memory domain.UserRepository double keyed by
// username.
type UserRepository struct {
	mu     sync.Mutex
	Users  map[string]domain.User
	nextID int64
}

var _ domain.UserRepository = (*UserRepository)(nil)

func NewUserRepository(users ...domain.User) *UserRepository {
	r := &UserRepository{Users: make(map[string]domain.User, len(users))}
	for _, u := range users {
		r.nextID++
		u.ID = r.nextID
		r.Users[u.Username] = u
	}
	return r
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.Users[username]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) Insert(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Users[u.Username]; ok {
		return domain.ErrConflict
	}
	r.nextID++
	u.ID = r.nextID
	r.Users[u.Username] = *u
	return nil
}
