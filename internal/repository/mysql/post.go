package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inkwell-cms/inkwell/domain"
	"github.com/inkwell-cms/inkwell/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository will create an implementation of domain.PostRepository
// backed by mysql.
func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{
		DB: db,
	}
}

func (m *postRepository) Fetch(ctx context.Context) ([]*domain.Post, error) {
	var posts []model.Post
	err := m.DB.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Post, len(posts))
	for i := range posts {
		res[i] = posts[i].ToDomain()
	}
	return res, nil
}

func (m *postRepository) FetchByAuthor(ctx context.Context, author string) ([]*domain.Post, error) {
	var posts []model.Post
	err := m.DB.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		Where("LOWER(author) = LOWER(?)", author).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Post, len(posts))
	for i := range posts {
		res[i] = posts[i].ToDomain()
	}
	return res, nil
}

func (m *postRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	var post model.Post
	err := m.DB.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return post.ToDomain(), nil
}

// Save commits the post and its comments in a single transaction. The post
// row and every comment row are upserted; soft-deleted comments stay in the
// table with the deleted flag set.
func (m *postRepository) Save(ctx context.Context, p *domain.Post) error {
	postModel := model.NewPostFromDomain(p)
	comments := postModel.Comments
	postModel.Comments = nil

	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(postModel).Error; err != nil {
			return err
		}
		if len(comments) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&comments).Error
	})
}
