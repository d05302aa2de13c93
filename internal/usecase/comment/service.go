package comment

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"

	"github.com/inkwell-cms/inkwell/domain"
)

const component = "CommentService"

// Service orchestrates listing, creation, moderation-state transitions and
// bulk deletion of comments. Every operation checks the caller's rights
// before touching the store.
type Service struct {
	gate     domain.SecurityGate
	posts    domain.PostRepository
	profiles domain.ProfileService
	accounts domain.AccountDirectory
	counter  domain.CommentCounter
	policy   *bluemonday.Policy
}

var _ domain.CommentUsecase = (*Service)(nil)

// NewService will create a new comment service object
func NewService(gate domain.SecurityGate, posts domain.PostRepository, profiles domain.ProfileService, accounts domain.AccountDirectory, counter domain.CommentCounter) *Service {
	return &Service{
		gate:     gate,
		posts:    posts,
		profiles: profiles,
		accounts: accounts,
		counter:  counter,
		policy:   bluemonday.StrictPolicy(),
	}
}

func (s *Service) List(ctx context.Context, opts domain.ListOptions) ([]domain.Comment, error) {
	if !s.gate.IsAuthorizedTo(ctx, domain.RightViewPublicComments) {
		return nil, domain.ErrForbidden
	}

	posts, err := s.visiblePosts(ctx)
	if err != nil {
		return nil, err
	}

	filter := opts.Filter
	if filter == nil {
		filter = func(*domain.Comment) bool { return true }
	}
	order := opts.Order
	if order == nil {
		order = func(a, b *domain.Comment) bool { return a.CreatedAt.After(b.CreatedAt) }
	}

	var matched []*domain.Comment
	for _, p := range posts {
		for _, c := range p.CommentsOfType(opts.Type) {
			if filter(c) {
				matched = append(matched, c)
			}
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return order(matched[i], matched[j]) })

	skip := opts.Skip
	if skip > len(matched) {
		skip = len(matched)
	}
	matched = matched[skip:]
	if opts.Take > 0 && opts.Take < len(matched) {
		matched = matched[:opts.Take]
	}

	res := make([]domain.Comment, len(matched))
	for i, c := range matched {
		res[i] = *c
	}
	return res, nil
}

// visiblePosts scopes the listing: callers who may edit other users' posts
// see everything, everyone else only posts they authored.
func (s *Service) visiblePosts(ctx context.Context) ([]*domain.Post, error) {
	if s.gate.IsAuthorizedTo(ctx, domain.RightEditOthersPosts) {
		return s.posts.Fetch(ctx)
	}
	caller, ok := s.gate.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrForbidden
	}
	return s.posts.FetchByAuthor(ctx, caller.Name)
}

func (s *Service) FindByID(ctx context.Context, id string) (domain.Comment, error) {
	if !s.gate.IsAuthorizedTo(ctx, domain.RightViewPublicComments) {
		return domain.Comment{}, domain.ErrForbidden
	}

	posts, err := s.posts.Fetch(ctx)
	if err != nil {
		return domain.Comment{}, err
	}
	for _, p := range posts {
		if c := p.FindComment(id); c != nil {
			return *c, nil
		}
	}
	return domain.Comment{}, domain.ErrNotFound
}

func (s *Service) Add(ctx context.Context, in domain.NewComment) (domain.Comment, error) {
	if !s.gate.IsAuthorizedTo(ctx, domain.RightCreateComments) {
		return domain.Comment{}, domain.ErrForbidden
	}

	post, err := s.posts.GetByID(ctx, in.PostID)
	if err != nil {
		logrus.WithField("component", component).Warnf("add: post %q not found: %v", in.PostID, err)
		return domain.Comment{}, domain.ErrNotFound
	}

	author := strings.TrimSpace(in.Author)
	email := strings.TrimSpace(in.Email)
	if author == "" || email == "" {
		if caller, ok := s.gate.CurrentUser(ctx); ok {
			if author == "" {
				author = caller.Name
				if profile, err := s.profiles.GetProfile(ctx, caller.Name); err == nil && profile.DisplayName != "" {
					author = profile.DisplayName
				}
			}
			if email == "" {
				if addr, err := s.accounts.EmailFor(ctx, caller.Name); err == nil {
					email = addr
				}
			}
		}
	}

	c := &domain.Comment{
		ID:        uuid.NewString(),
		ParentID:  in.ParentID,
		Author:    author,
		Email:     email,
		Website:   normalizeWebsite(in.Website),
		Content:   s.policy.Sanitize(in.Content),
		IP:        in.IP,
		Approved:  in.Approved,
		CreatedAt: time.Now(),
	}

	created := post.AddComment(c)
	if err := s.posts.Save(ctx, post); err != nil {
		logrus.WithField("component", component).Errorf("add: persisting post %q: %v", post.ID, err)
		return domain.Comment{}, err
	}
	return *created, nil
}

func (s *Service) Update(ctx context.Context, action string, upd domain.CommentUpdate) (bool, error) {
	if !s.gate.IsAuthorizedTo(ctx, domain.RightModerateComments) {
		return false, domain.ErrForbidden
	}

	posts, err := s.posts.Fetch(ctx)
	if err != nil {
		return false, err
	}
	for _, p := range posts {
		c := p.FindComment(upd.ID)
		if c == nil {
			continue
		}

		switch action {
		case domain.ActionApprove:
			c.Approve()
		case domain.ActionUnapprove:
			// unapproving is treated as implicit spam-marking
			c.MarkSpam()
		default:
			c.Content = upd.Content
			c.Author = upd.Author
			c.Email = upd.Email
			c.Website = normalizeWebsite(upd.Website)
			// Fixed evaluation order: a later flag wins when several are set.
			if upd.IsPending {
				c.MarkPending()
			}
			if upd.IsApproved {
				c.Approve()
			}
			if upd.IsSpam {
				c.MarkSpam()
			}
		}

		p.Touch()
		if err := s.posts.Save(ctx, p); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (s *Service) Remove(ctx context.Context, id string) (bool, error) {
	if !s.gate.IsAuthorizedTo(ctx, domain.RightModerateComments) {
		return false, domain.ErrForbidden
	}

	posts, err := s.posts.Fetch(ctx)
	if err != nil {
		return false, err
	}
	for _, p := range posts {
		if p.FindComment(id) == nil {
			continue
		}
		if !p.RemoveComment(id) {
			return false, nil
		}
		if err := s.posts.Save(ctx, p); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (s *Service) DeleteAll(ctx context.Context, commentType domain.CommentType) error {
	if !s.gate.IsAuthorizedTo(ctx, domain.RightModerateComments) {
		return domain.ErrForbidden
	}

	switch commentType {
	case domain.CommentPending:
		return s.sweep(ctx, (*domain.Post).PendingComments)
	case domain.CommentSpam:
		return s.sweep(ctx, (*domain.Post).SpamComments)
	default:
		return domain.ErrBadParamInput
	}
}

// sweep removes the selected comments from every published, non-deleted
// post, persisting once per post rather than per comment.
func (s *Service) sweep(ctx context.Context, selectComments func(*domain.Post) []*domain.Comment) error {
	posts, err := s.posts.Fetch(ctx)
	if err != nil {
		return err
	}
	for _, p := range posts {
		if !p.Published || p.Deleted {
			continue
		}
		targets := selectComments(p)
		if len(targets) == 0 {
			continue
		}
		for _, c := range targets {
			p.RemoveComment(c.ID)
		}
		p.Touch()
		if err := s.posts.Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) CountByState(ctx context.Context) (domain.CommentCounts, error) {
	if !s.gate.IsAuthorizedTo(ctx, domain.RightViewPublicComments) {
		return domain.CommentCounts{}, domain.ErrForbidden
	}
	return s.counter.CountByState(ctx)
}

// normalizeWebsite parses the website as a URL and clears it when blank or
// unparseable.
func normalizeWebsite(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.String()
}
