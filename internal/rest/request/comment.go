package request

import "github.com/inkwell-cms/inkwell/domain"

type CreateComment struct {
	ParentID string `json:"parent_id"`
	Author   string `json:"author"`
	Email    string `json:"email" binding:"omitempty,email"`
	Website  string `json:"website"`
	Content  string `json:"content" binding:"required"`
	Approved bool   `json:"approved"`
}

// ToDomain: Request -> Domain
func (r *CreateComment) ToDomain(postID, ip string) domain.NewComment {
	return domain.NewComment{
		PostID:   postID,
		ParentID: r.ParentID,
		Author:   r.Author,
		Email:    r.Email,
		Website:  r.Website,
		Content:  r.Content,
		IP:       ip,
		Approved: r.Approved,
	}
}

type UpdateComment struct {
	Author     string `json:"author"`
	Email      string `json:"email" binding:"omitempty,email"`
	Website    string `json:"website"`
	Content    string `json:"content"`
	IsPending  bool   `json:"is_pending"`
	IsApproved bool   `json:"is_approved"`
	IsSpam     bool   `json:"is_spam"`
}

// ToDomain: Request -> Domain
func (r *UpdateComment) ToDomain(id string) domain.CommentUpdate {
	return domain.CommentUpdate{
		ID:         id,
		Author:     r.Author,
		Email:      r.Email,
		Website:    r.Website,
		Content:    r.Content,
		IsPending:  r.IsPending,
		IsApproved: r.IsApproved,
		IsSpam:     r.IsSpam,
	}
}
