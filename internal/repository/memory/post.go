package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/inkwell-cms/inkwell/domain"
)

// PostRepository is an in-memory post/comment store. Reads hand out deep
// copies so callers can mutate freely; nothing becomes visible until Save
// commits the aggregate back. That mirrors the durable store's commit
// boundary and keeps tests honest about forgotten Save calls.
type PostRepository struct {
	mu    sync.RWMutex
	posts map[string]*domain.Post
	order []string
}

var _ domain.PostRepository = (*PostRepository)(nil)

func NewPostRepository(posts ...*domain.Post) *PostRepository {
	r := &PostRepository{posts: make(map[string]*domain.Post)}
	for _, p := range posts {
		r.posts[p.ID] = clonePost(p)
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *PostRepository) Fetch(ctx context.Context) ([]*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Post, 0, len(r.order))
	for _, id := range r.order {
		res = append(res, clonePost(r.posts[id]))
	}
	return res, nil
}

func (r *PostRepository) FetchByAuthor(ctx context.Context, author string) ([]*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []*domain.Post
	for _, id := range r.order {
		if p := r.posts[id]; strings.EqualFold(p.Author, author) {
			res = append(res, clonePost(p))
		}
	}
	return res, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clonePost(p), nil
}

func (r *PostRepository) Save(ctx context.Context, p *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[p.ID]; !ok {
		r.order = append(r.order, p.ID)
	}
	r.posts[p.ID] = clonePost(p)
	return nil
}

func clonePost(p *domain.Post) *domain.Post {
	cp := *p
	cp.Comments = make([]*domain.Comment, len(p.Comments))
	for i, c := range p.Comments {
		cc := *c
		cp.Comments[i] = &cc
	}
	return &cp
}
