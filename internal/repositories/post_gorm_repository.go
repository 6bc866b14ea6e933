package repositories

import (
	"errors"
	"fmt"

	"quill/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPostRepository is a GORM implementation of PostRepository.
type GORMPostRepository struct {
	db *gorm.DB
}

// NewGORMPostRepository creates a new instance of GORMPostRepository.
func NewGORMPostRepository(db *gorm.DB) *GORMPostRepository {
	return &GORMPostRepository{
		db: db,
	}
}

// Create creates a new blog post.
func (r *GORMPostRepository) Create(post *models.BlogPost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if err := r.db.Create(post).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("title %q already in use: %w", post.Title, err)
		}
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetByID retrieves a single post with its author preloaded.
func (r *GORMPostRepository) GetByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.Preload("Author").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post by ID %s: %w", id, err)
	}
	return &post, nil
}

// GetAll retrieves all posts, newest first, with authors preloaded.
func (r *GORMPostRepository) GetAll() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := r.db.Preload("Author").Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all posts: %w", err)
	}
	return posts, nil
}

// Update saves an edited post. Last writer wins; no optimistic locking.
func (r *GORMPostRepository) Update(post *models.BlogPost) error {
	res := r.db.Save(post)
	if res.Error != nil {
		return fmt.Errorf("failed to update post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes a post and cascades to its comments. The comment delete and
// the post delete run in one transaction so no orphaned comments survive.
// Both deletes are Unscoped: a soft-deleted row would keep the title's place
// in the unique index and block that title forever.
func (r *GORMPostRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("blog_post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("failed to delete comments for post %s: %w", id, err)
		}
		res := tx.Unscoped().Delete(&models.BlogPost{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete post %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}
