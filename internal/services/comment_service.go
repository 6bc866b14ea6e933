package services

import (
	"quill/internal/models"
	"quill/internal/repositories"
)

// CommentService handles business logic related to comments.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment adds a comment by user under the given post. The post lookup
// guarantees the comment never references a missing parent.
func (s *CommentService) CreateComment(text string, user *models.User, postID string) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}
	comment := &models.Comment{
		Text:       text,
		UserID:     user.ID,
		BlogPostID: postID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetCommentsForPost retrieves the comments under a post, oldest first.
func (s *CommentService) GetCommentsForPost(postID string) ([]models.Comment, error) {
	return s.commentRepo.GetByPostID(postID)
}
