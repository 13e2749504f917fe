package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"stylishtype/internal/models/db_models"
)

// BlogPageSize matches the storefront's blog grid.
const BlogPageSize = 9

type PostQuery struct {
	Search   string
	Category string
	Sort     string
	Page     int
}

type PostRepository interface {
	List(ctx context.Context, q PostQuery) ([]db_models.Post, int64, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Post, error)
	Related(ctx context.Context, category string, exclude uuid.UUID, limit int) ([]db_models.Post, error)
	Latest(ctx context.Context, limit int) ([]db_models.Post, error)
	AllPublished(ctx context.Context) ([]db_models.Post, error)
	Create(ctx context.Context, post *db_models.Post) (uuid.UUID, error)
	Update(ctx context.Context, post *db_models.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) List(ctx context.Context, q PostQuery) ([]db_models.Post, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Where("published = TRUE")
		if q.Search != "" {
			db = db.Where("title ILIKE ?", "%"+q.Search+"%")
		}
		if q.Category != "" {
			db = db.Where("category = ?", q.Category)
		}
		return db
	}

	var count int64
	if err := filter(r.db.WithContext(ctx).Model(&db_models.Post{})).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	scope := filter(r.db.WithContext(ctx).Model(&db_models.Post{}))

	page := q.Page
	if page < 1 {
		page = 1
	}

	switch q.Sort {
	case SortOldest:
		scope = scope.Order("created_at ASC")
	case SortAToZ:
		scope = scope.Order("title ASC")
	case SortZToA:
		scope = scope.Order("title DESC")
	default:
		scope = scope.Order("created_at DESC")
	}

	var posts []db_models.Post
	err := scope.
		Offset((page - 1) * BlogPageSize).
		Limit(BlogPageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, count, nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*db_models.Post, error) {
	var post db_models.Post
	err := r.db.WithContext(ctx).First(&post, "slug = ? AND published = TRUE", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Post, error) {
	var post db_models.Post
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Related(ctx context.Context, category string, exclude uuid.UUID, limit int) ([]db_models.Post, error) {
	var posts []db_models.Post
	err := r.db.WithContext(ctx).
		Where("published = TRUE AND category = ? AND id <> ?", category, exclude).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Latest(ctx context.Context, limit int) ([]db_models.Post, error) {
	var posts []db_models.Post
	err := r.db.WithContext(ctx).
		Where("published = TRUE").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) AllPublished(ctx context.Context) ([]db_models.Post, error) {
	var posts []db_models.Post
	if err := r.db.WithContext(ctx).Where("published = TRUE").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Create(ctx context.Context, post *db_models.Post) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return uuid.Nil, err
	}
	return post.ID, nil
}

func (r *postRepository) Update(ctx context.Context, post *db_models.Post) error {
	result := r.db.WithContext(ctx).Save(post)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Post{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
