package repositories

import "quill/internal/models"

// UserRepository defines the interface for user data access. First-admin
// promotion counts inside Create's own transaction, so no count operation is
// exposed here; GORMUserRepository keeps a concrete Count for tests.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
