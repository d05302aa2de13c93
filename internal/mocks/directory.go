package mocks

import (
	"context"

	"github.com/inkwell-cms/inkwell/domain"
)

// ProfileService serves display names from a map.
type ProfileService struct {
	Profiles map[string]domain.Profile
}

var _ domain.ProfileService = (*ProfileService)(nil)

func (s *ProfileService) GetProfile(_ context.Context, name string) (domain.Profile, error) {
	p, ok := s.Profiles[name]
	if !ok {
		return domain.Profile{}, domain.ErrNotFound
	}
	return p, nil
}

// AccountDirectory serves registered emails from a map.
type AccountDirectory struct {
	Emails map[string]string
}

var _ domain.AccountDirectory = (*AccountDirectory)(nil)

func (d *AccountDirectory) EmailFor(_ context.Context, name string) (string, error) {
	addr, ok := d.Emails[name]
	if !ok {
		return "", domain.ErrNotFound
	}
	return addr, nil
}

// CommentCounter returns fixed counts.
type CommentCounter struct {
	Counts domain.CommentCounts
	Err    error
}

var _ domain.CommentCounter = (*CommentCounter)(nil)

func (c *CommentCounter) CountByState(context.Context) (domain.CommentCounts, error) {
	return c.Counts, c.Err
}

// CommentCountCache is an in-memory domain.CommentCountCache double.
type CommentCountCache struct {
	Counts      *domain.CommentCounts
	SetCalls    int
	Invalidated int
}

var _ domain.CommentCountCache = (*CommentCountCache)(nil)

func (c *CommentCountCache) Get(context.Context) (domain.CommentCounts, error) {
	if c.Counts == nil {
		return domain.CommentCounts{}, domain.ErrCacheMiss
	}
	return *c.Counts, nil
}

func (c *CommentCountCache) Set(_ context.Context, counts domain.CommentCounts) error {
	c.SetCalls++
	c.Counts = &counts
	return nil
}

func (c *CommentCountCache) Invalidate(context.Context) error {
	c.Invalidated++
	c.Counts = nil
	return nil
}
