package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/inkwell-cms/inkwell/domain"
	"github.com/inkwell-cms/inkwell/internal/repository/mysql/model"
)

type userRepository struct {
	DB *gorm.DB
}

var (
	_ domain.UserRepository   = (*userRepository)(nil)
	_ domain.ProfileService   = (*userRepository)(nil)
	_ domain.AccountDirectory = (*userRepository)(nil)
)

// NewUserRepository will create an implementation of user.Repository. The
// same repository backs the profile lookup and the account directory the
// comment service consumes.
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)

	result := m.DB.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return result.Error
	}

	u.ID = userModel.ID

	return nil
}

func (m *userRepository) GetProfile(ctx context.Context, name string) (domain.Profile, error) {
	u, err := m.GetByUsername(ctx, name)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{DisplayName: u.DisplayName}, nil
}

func (m *userRepository) EmailFor(ctx context.Context, name string) (string, error) {
	u, err := m.GetByUsername(ctx, name)
	if err != nil {
		return "", err
	}
	return u.Email, nil
}
