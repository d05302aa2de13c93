package repository

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/inkwell-cms/inkwell/domain"
)

// postRepository coordinates the durable post store and the redis-backed
// comment tally. Every Save invalidates the cached tally; a miss rebuilds
// it from the store behind a singleflight so concurrent dashboard requests
// do not stampede the database.
type postRepository struct {
	db         domain.PostRepository
	counts     domain.CommentCountCache
	countGroup singleflight.Group
}

var (
	_ domain.PostRepository = (*postRepository)(nil)
	_ domain.CommentCounter = (*postRepository)(nil)
)

// NewPostRepository creates the coordination-layer repository.
func NewPostRepository(db domain.PostRepository, counts domain.CommentCountCache) *postRepository {
	return &postRepository{
		db:     db,
		counts: counts,
	}
}

func (r *postRepository) Fetch(ctx context.Context) ([]*domain.Post, error) {
	return r.db.Fetch(ctx)
}

func (r *postRepository) FetchByAuthor(ctx context.Context, author string) ([]*domain.Post, error) {
	return r.db.FetchByAuthor(ctx, author)
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	return r.db.GetByID(ctx, id)
}

func (r *postRepository) Save(ctx context.Context, p *domain.Post) error {
	if err := r.db.Save(ctx, p); err != nil {
		return err
	}

	if err := r.counts.Invalidate(ctx); err != nil {
		logrus.Warnf("failed to invalidate comment counts: %v", err)
	}
	return nil
}

func (r *postRepository) CountByState(ctx context.Context) (domain.CommentCounts, error) {
	counts, err := r.counts.Get(ctx)
	if err == nil {
		return counts, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("comment counts cache get error: %v", err)
	}

	v, err, _ := r.countGroup.Do("comment_counts", func() (any, error) {
		return r.buildCounts(ctx)
	})
	if err != nil {
		return domain.CommentCounts{}, err
	}
	return v.(domain.CommentCounts), nil
}

// buildCounts tallies comments on published, non-deleted posts and
// refreshes the cache.
func (r *postRepository) buildCounts(ctx context.Context) (domain.CommentCounts, error) {
	posts, err := r.db.Fetch(ctx)
	if err != nil {
		return domain.CommentCounts{}, err
	}

	var counts domain.CommentCounts
	for _, p := range posts {
		if !p.Published || p.Deleted {
			continue
		}
		counts.Approved += int64(len(p.ApprovedComments()))
		counts.Pending += int64(len(p.PendingComments()))
		counts.Spam += int64(len(p.SpamComments()))
	}

	if err := r.counts.Set(ctx, counts); err != nil {
		logrus.Warnf("failed to set comment counts cache: %v", err)
	}
	return counts, nil
}
