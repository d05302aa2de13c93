package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/inkwell-cms/inkwell/domain"
)

// PostRepository is a spy store: it serves posts from a slice, counts every
// invocation and records which posts were saved. Posts are shared by
// pointer so tests can assert on mutations directly.
type PostRepository struct {
	mu      sync.Mutex
	posts   []*domain.Post
	Calls   int
	SavedID []string
	SaveErr error
}

var _ domain.PostRepository = (*PostRepository)(nil)

func NewPostRepository(posts ...*domain.Post) *PostRepository {
	return &PostRepository{posts: posts}
}

func (r *PostRepository) Fetch(context.Context) ([]*domain.Post, error) {
	r.record()
	return r.posts, nil
}

func (r *PostRepository) FetchByAuthor(_ context.Context, author string) ([]*domain.Post, error) {
	r.record()
	var res []*domain.Post
	for _, p := range r.posts {
		if strings.EqualFold(p.Author, author) {
			res = append(res, p)
		}
	}
	return res, nil
}

func (r *PostRepository) GetByID(_ context.Context, id string) (*domain.Post, error) {
	r.record()
	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *PostRepository) Save(_ context.Context, p *domain.Post) error {
	r.record()
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.mu.Lock()
	r.SavedID = append(r.SavedID, p.ID)
	r.mu.Unlock()
	return nil
}

func (r *PostRepository) record() {
	r.mu.Lock()
	r.Calls++
	r.mu.Unlock()
}
