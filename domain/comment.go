package domain

import (
	"context"
	"time"
)

// Comment is a reader comment owned by exactly one Post.
//
// Approved and Spam are never both true in steady state: the moderation
// transitions clear the opposite flag. Deleted is an orthogonal soft-delete
// marker; deleted comments stay in the post's collection but are excluded
// from default listings and bulk sweeps.
type Comment struct {
	ID        string    // Opaque token, stable for the comment's lifetime
	PostID    string    // Owning post
	ParentID  string    // Parent comment for threaded replies, empty = top-level
	Author    string    // Display name
	Email     string    // Author email
	Website   string    // Optional website URL
	Content   string    // Free-text content, sanitized on creation
	IP        string    // Client IP captured on creation
	Pingback  bool      // Automated notification from an external site
	Approved  bool      // Visible to the public
	Spam      bool      // Flagged by a moderator
	Deleted   bool      // Soft delete
	CreatedAt time.Time // Creation timestamp
}

// Approve makes the comment publicly visible and clears the spam flag.
func (c *Comment) Approve() {
	c.Approved = true
	c.Spam = false
}

// MarkSpam flags the comment as spam and revokes approval.
func (c *Comment) MarkSpam() {
	c.Approved = false
	c.Spam = true
}

// MarkPending returns the comment to the moderation queue.
func (c *Comment) MarkPending() {
	c.Approved = false
	c.Spam = false
}

// IsPending reports whether the comment is awaiting moderation.
func (c *Comment) IsPending() bool {
	return !c.Approved && !c.Spam && !c.Deleted
}

// CommentType selects a comment subset of a post.
type CommentType string

const (
	CommentAll      CommentType = "all"
	CommentPending  CommentType = "pending"
	CommentApproved CommentType = "approved"
	CommentSpam     CommentType = "spam"
	CommentPingback CommentType = "pingback"
)

// Moderation actions accepted by CommentUsecase.Update. Any other value
// triggers a full field update driven by the flags on CommentUpdate.
const (
	ActionApprove   = "approve"
	ActionUnapprove = "unapprove"
)

// CommentFilter selects comments from a listing. A nil filter selects
// everything.
type CommentFilter func(*Comment) bool

// CommentOrder reports whether a sorts before b. A nil order sorts by
// creation date descending.
type CommentOrder func(a, b *Comment) bool

// ListOptions controls CommentUsecase.List.
type ListOptions struct {
	Type   CommentType
	Take   int // 0 is a sentinel meaning "take all", not "take zero"
	Skip   int
	Filter CommentFilter
	Order  CommentOrder
}

// NewComment is the input for CommentUsecase.Add.
type NewComment struct {
	PostID   string
	ParentID string
	Author   string // defaulted from the caller's profile when blank
	Email    string // defaulted from the caller's account when blank
	Website  string
	Content  string
	IP       string
	Approved bool // pre-approved creation, e.g. trusted authors
}

// CommentUpdate carries a full field update plus moderation hints.
// The hints are applied in a fixed order (pending, approved, spam) so that
// a later flag wins when several are set.
type CommentUpdate struct {
	ID         string
	Author     string
	Email      string
	Website    string
	Content    string
	IsPending  bool
	IsApproved bool
	IsSpam     bool
}

// CommentCounts is the per-state tally shown on the dashboard badge.
type CommentCounts struct {
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
	Spam     int64 `json:"spam"`
}

// CommentUsecase is the comment moderation and authorization workflow.
// Every operation checks the caller's rights before touching the store and
// returns ErrForbidden when the required right is missing.
type CommentUsecase interface {
	// List returns projected comments of the given type, filtered, ordered
	// and paginated. Side-effect-free.
	List(ctx context.Context, opts ListOptions) ([]Comment, error)

	// FindByID searches every post's full comment set, including deleted
	// comments. Returns ErrNotFound if no comment matches.
	FindByID(ctx context.Context, id string) (Comment, error)

	// Add creates a comment on the target post and persists the post.
	// Returns the created comment.
	Add(ctx context.Context, in NewComment) (Comment, error)

	// Update applies a moderation action or a full field update to the
	// comment with the given id. Returns false if no such comment exists.
	Update(ctx context.Context, action string, upd CommentUpdate) (bool, error)

	// Remove soft-deletes the comment with the given id. Returns false if
	// no such comment exists.
	Remove(ctx context.Context, id string) (bool, error)

	// DeleteAll sweeps pending or spam comments from every published,
	// non-deleted post, persisting once per post. Any other comment type
	// is rejected with ErrBadParamInput.
	DeleteAll(ctx context.Context, commentType CommentType) error

	// CountByState returns the per-state comment tally.
	CountByState(ctx context.Context) (CommentCounts, error)
}

// CommentCounter provides the per-state tally, typically cache-backed.
type CommentCounter interface {
	CountByState(ctx context.Context) (CommentCounts, error)
}

// CommentCountCache caches the per-state tally.
type CommentCountCache interface {
	Get(ctx context.Context) (CommentCounts, error) // ErrCacheMiss when absent
	Set(ctx context.Context, counts CommentCounts) error
	Invalidate(ctx context.Context) error
}
