package repositories

import "quill/internal/models"

// CommentRepository defines the interface for comment data access.
// Comments have no update or standalone delete: they are immutable and go
// away only with their parent post.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id string) (*models.Comment, error)
	GetByPostID(postID string) ([]models.Comment, error)
}
