package response

import "github.com/inkwell-cms/inkwell/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

// Comment is the transfer-safe projection of a comment. The client IP is
// internal-only and never leaves the server.
type Comment struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	ParentID  string `json:"parent_id,omitempty"`
	Author    string `json:"author"`
	Email     string `json:"email"`
	Website   string `json:"website,omitempty"`
	Content   string `json:"content"`
	Pingback  bool   `json:"pingback"`
	Status    string `json:"status"`
	Deleted   bool   `json:"deleted"`
	CreatedAt string `json:"created_at"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		ParentID:  c.ParentID,
		Author:    c.Author,
		Email:     c.Email,
		Website:   c.Website,
		Content:   c.Content,
		Pingback:  c.Pingback,
		Status:    statusOf(c),
		Deleted:   c.Deleted,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
	}
}

func statusOf(c *domain.Comment) string {
	switch {
	case c.Spam:
		return string(domain.CommentSpam)
	case c.Approved:
		return string(domain.CommentApproved)
	default:
		return string(domain.CommentPending)
	}
}
