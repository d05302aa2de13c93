package model

import (
	"time"

	"github.com/inkwell-cms/inkwell/domain"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;size:36"`
	PostID    string    `gorm:"column:post_id;size:36;not null;index"`
	ParentID  string    `gorm:"column:parent_id;size:36;default:''"`
	Author    string    `gorm:"size:128"`
	Email     string    `gorm:"size:255"`
	Website   string    `gorm:"size:255"`
	Content   string    `gorm:"type:text;not null"`
	IP        string    `gorm:"column:ip;size:45"`
	Pingback  bool      `gorm:"not null;default:false"`
	Approved  bool      `gorm:"not null;default:false"`
	Spam      bool      `gorm:"not null;default:false"`
	Deleted   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		ParentID:  c.ParentID,
		Author:    c.Author,
		Email:     c.Email,
		Website:   c.Website,
		Content:   c.Content,
		IP:        c.IP,
		Pingback:  c.Pingback,
		Approved:  c.Approved,
		Spam:      c.Spam,
		Deleted:   c.Deleted,
		CreatedAt: c.CreatedAt,
	}
}

func (m *Comment) ToDomain() *domain.Comment {
	return &domain.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		ParentID:  m.ParentID,
		Author:    m.Author,
		Email:     m.Email,
		Website:   m.Website,
		Content:   m.Content,
		IP:        m.IP,
		Pingback:  m.Pingback,
		Approved:  m.Approved,
		Spam:      m.Spam,
		Deleted:   m.Deleted,
		CreatedAt: m.CreatedAt,
	}
}
