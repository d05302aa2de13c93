package domain

import (
	"context"
	"time"
)

// Post owns an ordered collection of comments. Comments enter and leave the
// collection only through AddComment and RemoveComment so the modified
// timestamp stays in sync; callers persist the whole aggregate with
// PostRepository.Save after every mutation.
type Post struct {
	ID         string
	Title      string
	Author     string // author identity name, matched case-insensitively
	Published  bool
	Deleted    bool
	ModifiedAt time.Time
	Comments   []*Comment // insertion order
}

// AllComments returns every comment including deleted ones.
func (p *Post) AllComments() []*Comment {
	res := make([]*Comment, len(p.Comments))
	copy(res, p.Comments)
	return res
}

// ApprovedComments returns publicly visible comments.
func (p *Post) ApprovedComments() []*Comment {
	return p.selectComments(func(c *Comment) bool { return c.Approved && !c.Spam })
}

// PendingComments returns comments awaiting moderation.
func (p *Post) PendingComments() []*Comment {
	return p.selectComments(func(c *Comment) bool { return !c.Approved && !c.Spam })
}

// SpamComments returns comments flagged as spam.
func (p *Post) SpamComments() []*Comment {
	return p.selectComments(func(c *Comment) bool { return c.Spam })
}

// Pingbacks returns automated notification comments.
func (p *Post) Pingbacks() []*Comment {
	return p.selectComments(func(c *Comment) bool { return c.Pingback })
}

// CommentsOfType returns the comment subset backing a listing. Deleted
// comments are excluded from every subset except via AllComments.
func (p *Post) CommentsOfType(t CommentType) []*Comment {
	switch t {
	case CommentPending:
		return p.PendingComments()
	case CommentApproved:
		return p.ApprovedComments()
	case CommentSpam:
		return p.SpamComments()
	case CommentPingback:
		return p.Pingbacks()
	default:
		return p.selectComments(func(*Comment) bool { return true })
	}
}

// FindComment returns the comment with the given id, including deleted
// ones, or nil if the post does not own it.
func (p *Post) FindComment(id string) *Comment {
	for _, c := range p.Comments {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// AddComment appends the comment, links it to the post and stamps the
// modified timestamp. The stored comment is handed back so callers never
// need to re-locate it.
func (p *Post) AddComment(c *Comment) *Comment {
	c.PostID = p.ID
	p.Comments = append(p.Comments, c)
	p.Touch()
	return c
}

// RemoveComment soft-deletes the comment with the given id and stamps the
// modified timestamp. Returns false if the post does not own the comment
// or it is already deleted.
func (p *Post) RemoveComment(id string) bool {
	c := p.FindComment(id)
	if c == nil || c.Deleted {
		return false
	}
	c.Deleted = true
	p.Touch()
	return true
}

// Touch stamps the last-modified timestamp.
func (p *Post) Touch() {
	p.ModifiedAt = time.Now()
}

func (p *Post) selectComments(keep func(*Comment) bool) []*Comment {
	res := make([]*Comment, 0, len(p.Comments))
	for _, c := range p.Comments {
		if !c.Deleted && keep(c) {
			res = append(res, c)
		}
	}
	return res
}

// PostRepository is the injected post/comment store. Save is the commit
// boundary: it durably commits the post including its comments, and must be
// invoked after every mutation. There is no rollback path if Save fails
// after an in-memory mutation; memory and durable state may diverge.
type PostRepository interface {
	// Fetch returns every post.
	Fetch(ctx context.Context) ([]*Post, error)

	// FetchByAuthor returns posts whose author name matches,
	// case-insensitively.
	FetchByAuthor(ctx context.Context, author string) ([]*Post, error)

	// GetByID returns a single post. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*Post, error)

	// Save durably commits the post and its comments.
	Save(ctx context.Context, p *Post) error
}
