package services_test

import (
	"testing"
	"time"

	"quill/internal/models"
	"quill/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock implementation of repositories.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *models.BlogPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id string) (*models.BlogPost, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockPostRepository) GetAll() ([]models.BlogPost, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockPostRepository) Update(post *models.BlogPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestPostService_CreatePost(t *testing.T) {
	mockRepo := new(MockPostRepository)
	postService := services.NewPostService(mockRepo)

	var created *models.BlogPost
	mockRepo.On("Create", mock.AnythingOfType("*models.BlogPost")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.BlogPost)
		created.ID = "post-1"
	}).Return(nil).Once()

	author := &models.User{ID: "user-1", Name: "Alice"}
	form := models.PostForm{
		Title:    "Hello World",
		Subtitle: "A first post",
		ImgURL:   "https://example.com/img.png",
		Body:     "<p>Body text</p>",
	}

	post, err := postService.CreatePost(form, author)
	assert.NoError(t, err)
	assert.Equal(t, "post-1", post.ID)
	assert.Equal(t, "Hello World", created.Title)
	assert.Equal(t, "user-1", created.AuthorID)

	// The display date is formatted at creation and must parse back with the
	// same layout.
	parsed, err := time.Parse("January 02, 2006", created.Date)
	assert.NoError(t, err)
	assert.Equal(t, time.Now().Year(), parsed.Year())

	mockRepo.AssertExpectations(t)
}

func TestPostService_UpdatePost(t *testing.T) {
	mockRepo := new(MockPostRepository)
	postService := services.NewPostService(mockRepo)

	stored := &models.BlogPost{
		ID:       "post-1",
		Title:    "Old Title",
		Subtitle: "Old subtitle",
		Date:     "June 01, 2026",
		Body:     "old",
		ImgURL:   "https://example.com/old.png",
		AuthorID: "user-1",
	}
	mockRepo.On("GetByID", "post-1").Return(stored, nil).Once()
	mockRepo.On("Update", stored).Return(nil).Once()

	form := models.PostForm{
		Title:    "New Title",
		Subtitle: "New subtitle",
		ImgURL:   "https://example.com/new.png",
		Body:     "new",
	}
	post, err := postService.UpdatePost("post-1", form)
	assert.NoError(t, err)
	assert.Equal(t, "New Title", post.Title)
	// Author and date survive the edit untouched.
	assert.Equal(t, "user-1", post.AuthorID)
	assert.Equal(t, "June 01, 2026", post.Date)

	mockRepo.AssertExpectations(t)
}

func TestPostService_UpdatePost_NotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	postService := services.NewPostService(mockRepo)

	mockRepo.On("GetByID", "missing").Return(nil, models.ErrNotFound).Once()

	post, err := postService.UpdatePost("missing", models.PostForm{})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, post)

	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestPostService_CanEdit(t *testing.T) {
	postService := services.NewPostService(new(MockPostRepository))

	post := &models.BlogPost{ID: "post-1", AuthorID: "author"}
	author := &models.User{ID: "author"}
	admin := &models.User{ID: "admin", Admin: true}
	other := &models.User{ID: "other"}

	assert.True(t, postService.CanEdit(author, post))
	assert.True(t, postService.CanEdit(admin, post))
	assert.False(t, postService.CanEdit(other, post))
	// Anonymous is a plain denial, never a panic.
	assert.False(t, postService.CanEdit(nil, post))
	assert.False(t, postService.CanEdit(author, nil))

	assert.NoError(t, postService.AuthorizeEdit(admin, post))
	assert.ErrorIs(t, postService.AuthorizeEdit(other, post), models.ErrForbidden)
	assert.ErrorIs(t, postService.AuthorizeEdit(nil, post), models.ErrForbidden)
}

func TestPostService_DeletePost(t *testing.T) {
	mockRepo := new(MockPostRepository)
	postService := services.NewPostService(mockRepo)

	mockRepo.On("Delete", "post-1").Return(nil).Once()
	assert.NoError(t, postService.DeletePost("post-1"))

	mockRepo.On("Delete", "missing").Return(models.ErrNotFound).Once()
	assert.ErrorIs(t, postService.DeletePost("missing"), models.ErrNotFound)

	mockRepo.AssertExpectations(t)
}
