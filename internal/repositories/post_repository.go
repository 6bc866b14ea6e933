package repositories

import "quill/internal/models"

// PostRepository defines the interface for blog post data access.
type PostRepository interface {
	Create(post *models.BlogPost) error
	GetByID(id string) (*models.BlogPost, error)
	GetAll() ([]models.BlogPost, error)
	Update(post *models.BlogPost) error
	Delete(id string) error
}
