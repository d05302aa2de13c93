package model

import (
	"time"

	"github.com/inkwell-cms/inkwell/domain"
)

type User struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Username    string    `gorm:"size:64;not null;uniqueIndex"`
	DisplayName string    `gorm:"column:display_name;size:128"`
	Email       string    `gorm:"size:255;not null"`
	Password    string    `gorm:"size:255;not null"`
	Role        string    `gorm:"size:32;not null"`
	CreatedAt   time.Time `gorm:"type:datetime"`
	UpdatedAt   time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "user"
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Password:    u.Password,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:          m.ID,
		Username:    m.Username,
		DisplayName: m.DisplayName,
		Email:       m.Email,
		Password:    m.Password,
		Role:        m.Role,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
