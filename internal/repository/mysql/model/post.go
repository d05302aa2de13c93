package model

import (
	"time"

	"github.com/inkwell-cms/inkwell/domain"
)

type Post struct {
	ID         string    `gorm:"primaryKey;size:36"`
	Title      string    `gorm:"size:255;not null"`
	Author     string    `gorm:"column:author;size:64;not null;index"`
	Published  bool      `gorm:"not null;default:false"`
	Deleted    bool      `gorm:"not null;default:false"`
	ModifiedAt time.Time `gorm:"type:datetime"`
	Comments   []Comment `gorm:"foreignKey:PostID"`
}

func (Post) TableName() string {
	return "post"
}

func NewPostFromDomain(p *domain.Post) *Post {
	m := &Post{
		ID:         p.ID,
		Title:      p.Title,
		Author:     p.Author,
		Published:  p.Published,
		Deleted:    p.Deleted,
		ModifiedAt: p.ModifiedAt,
	}
	for _, c := range p.Comments {
		m.Comments = append(m.Comments, *NewCommentFromDomain(c))
	}
	return m
}

func (m *Post) ToDomain() *domain.Post {
	p := &domain.Post{
		ID:         m.ID,
		Title:      m.Title,
		Author:     m.Author,
		Published:  m.Published,
		Deleted:    m.Deleted,
		ModifiedAt: m.ModifiedAt,
	}
	for i := range m.Comments {
		p.Comments = append(p.Comments, m.Comments[i].ToDomain())
	}
	return p
}
