package services

import (
	"time"

	"quill/internal/models"
	"quill/internal/repositories"
)

// postDateLayout is the display format stored on each post at creation time.
const postDateLayout = "January 02, 2006"

// PostService handles business logic related to blog posts, including the
// edit/delete authorization rule.
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
	}
}

// GetAllPosts retrieves all posts, newest first.
func (s *PostService) GetAllPosts() ([]models.BlogPost, error) {
	return s.postRepo.GetAll()
}

// GetPostByID retrieves a single post by its ID.
func (s *PostService) GetPostByID(id string) (*models.BlogPost, error) {
	return s.postRepo.GetByID(id)
}

// CreatePost creates a post from the submitted form, attributed to author.
// The display date is formatted here and never changes afterwards.
func (s *PostService) CreatePost(form models.PostForm, author *models.User) (*models.BlogPost, error) {
	post := &models.BlogPost{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Date:     time.Now().Format(postDateLayout),
		Body:     form.Body,
		ImgURL:   form.ImgURL,
		AuthorID: author.ID,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost applies the submitted form to an existing post. Concurrent
// edits are last-writer-wins.
func (s *PostService) UpdatePost(id string, form models.PostForm) (*models.BlogPost, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	post.Title = form.Title
	post.Subtitle = form.Subtitle
	post.ImgURL = form.ImgURL
	post.Body = form.Body
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and all of its comments.
func (s *PostService) DeletePost(id string) error {
	return s.postRepo.Delete(id)
}

// CanEdit reports whether user may edit or delete post. Admins may touch any
// post; authors only their own. A nil user is anonymous and always denied.
func (s *PostService) CanEdit(user *models.User, post *models.BlogPost) bool {
	if user == nil || post == nil {
		return false
	}
	return user.Admin || user.ID == post.AuthorID
}

// AuthorizeEdit is the enforcement form of CanEdit, returning
// models.ErrForbidden on denial. Handlers call it before any mutation runs.
func (s *PostService) AuthorizeEdit(user *models.User, post *models.BlogPost) error {
	if !s.CanEdit(user, post) {
		return models.ErrForbidden
	}
	return nil
}
