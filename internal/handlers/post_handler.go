package handlers

import (
	"errors"
	"log"

	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PostHandler handles the post pages: the home list, the post view with its
// comments, and the create/edit/delete flows.
type PostHandler struct {
	postService    *services.PostService
	commentService *services.CommentService
	validate       *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService, commentService *services.CommentService) *PostHandler {
	return &PostHandler{
		postService:    postService,
		commentService: commentService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the post routes with the Fiber app. requireAuth
// guards the mutating pages; the per-post authorization check happens inside
// the edit and delete handlers.
func (h *PostHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	router.Get("/", h.HandleHome)
	router.Get("/post/:id", h.ShowPost)
	router.Post("/post/:id", h.HandleComment)
	router.Get("/new-post", requireAuth, h.ShowCreate)
	router.Post("/new-post", requireAuth, h.HandleCreate)
	router.Get("/edit-post/:id", requireAuth, h.ShowEdit)
	router.Post("/edit-post/:id", requireAuth, h.HandleEdit)
	router.Get("/delete-post/:id", requireAuth, h.HandleDelete)
}

// HandleHome renders the post list, newest first.
func (h *PostHandler) HandleHome(c *fiber.Ctx) error {
	posts, err := h.postService.GetAllPosts()
	if err != nil {
		log.Printf("Error listing posts: %v", err)
		return fiber.ErrInternalServerError
	}
	return c.Render("index", viewData(c, fiber.Map{"Posts": posts}))
}

// ShowPost renders a post with its comments and the comment form. An unknown
// id redirects to the home page instead of erroring.
func (h *PostHandler) ShowPost(c *fiber.Ctx) error {
	return h.renderPost(c, c.Params("id"), models.CommentForm{}, nil)
}

// HandleComment persists a comment from an authenticated user. Anonymous
// attempts flash a notice and redirect to login without persisting anything.
func (h *PostHandler) HandleComment(c *fiber.Ctx) error {
	id := c.Params("id")

	var form models.CommentForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing comment form: %v", err)
		return h.renderPost(c, id, form, map[string]string{"form": "Invalid form submission"})
	}
	if err := h.validate.Struct(form); err != nil {
		return h.renderPost(c, id, form, formErrors(err))
	}

	user := middleware.UserFromCtx(c)
	if user == nil {
		middleware.SetFlash(c, "Please log in to leave a comment")
		return c.Redirect("/login", fiber.StatusFound)
	}

	if _, err := h.commentService.CreateComment(form.Text, user, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Redirect("/", fiber.StatusFound)
		}
		log.Printf("Error creating comment on post %s: %v", id, err)
		return fiber.ErrInternalServerError
	}

	// Re-render with a cleared form so the comment shows immediately.
	return h.renderPost(c, id, models.CommentForm{}, nil)
}

// ShowCreate renders the empty post form.
func (h *PostHandler) ShowCreate(c *fiber.Ctx) error {
	return c.Render("make-post", viewData(c, fiber.Map{
		"Form":     models.PostForm{},
		"IsCreate": true,
	}))
}

// HandleCreate persists a new post attributed to the session user and
// redirects to it.
func (h *PostHandler) HandleCreate(c *fiber.Ctx) error {
	var form models.PostForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing post form: %v", err)
		return c.Status(fiber.StatusBadRequest).Render("make-post", viewData(c, fiber.Map{
			"Form":     form,
			"IsCreate": true,
			"Errors":   map[string]string{"form": "Invalid form submission"},
		}))
	}
	if err := h.validate.Struct(form); err != nil {
		return c.Render("make-post", viewData(c, fiber.Map{
			"Form":     form,
			"IsCreate": true,
			"Errors":   formErrors(err),
		}))
	}

	user := middleware.UserFromCtx(c)
	post, err := h.postService.CreatePost(form, user)
	if err != nil {
		log.Printf("Error creating post: %v", err)
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/post/"+post.ID, fiber.StatusFound)
}

// ShowEdit renders the post form pre-filled with the existing values.
func (h *PostHandler) ShowEdit(c *fiber.Ctx) error {
	post, err := h.guardPost(c)
	if err != nil {
		return err
	}
	if post == nil {
		return nil // guardPost already wrote the response
	}
	return c.Render("make-post", viewData(c, fiber.Map{
		"Form": models.PostForm{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			ImgURL:   post.ImgURL,
			Body:     post.Body,
		},
		"IsCreate": false,
		"PostID":   post.ID,
	}))
}

// HandleEdit applies the submitted form to the post and redirects to it.
func (h *PostHandler) HandleEdit(c *fiber.Ctx) error {
	post, err := h.guardPost(c)
	if err != nil {
		return err
	}
	if post == nil {
		return nil
	}

	var form models.PostForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing post form: %v", err)
		return c.Status(fiber.StatusBadRequest).Render("make-post", viewData(c, fiber.Map{
			"Form":     form,
			"IsCreate": false,
			"PostID":   post.ID,
			"Errors":   map[string]string{"form": "Invalid form submission"},
		}))
	}
	if err := h.validate.Struct(form); err != nil {
		return c.Render("make-post", viewData(c, fiber.Map{
			"Form":     form,
			"IsCreate": false,
			"PostID":   post.ID,
			"Errors":   formErrors(err),
		}))
	}

	if _, err := h.postService.UpdatePost(post.ID, form); err != nil {
		log.Printf("Error updating post %s: %v", post.ID, err)
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/post/"+post.ID, fiber.StatusFound)
}

// HandleDelete removes the post and its comments, then redirects home.
func (h *PostHandler) HandleDelete(c *fiber.Ctx) error {
	post, err := h.guardPost(c)
	if err != nil {
		return err
	}
	if post == nil {
		return nil
	}

	if err := h.postService.DeletePost(post.ID); err != nil {
		log.Printf("Error deleting post %s: %v", post.ID, err)
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/", fiber.StatusFound)
}

// guardPost loads the post named in the route and enforces the edit rule
// before any mutation runs. A missing post redirects home (response written,
// nil post returned); an unauthorized user gets an explicit 403 page, never
// a silent redirect.
func (h *PostHandler) guardPost(c *fiber.Ctx) (*models.BlogPost, error) {
	id := c.Params("id")
	post, err := h.postService.GetPostByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, c.Redirect("/", fiber.StatusFound)
		}
		log.Printf("Error loading post %s: %v", id, err)
		return nil, fiber.ErrInternalServerError
	}

	user := middleware.UserFromCtx(c)
	if err := h.postService.AuthorizeEdit(user, post); err != nil {
		return nil, c.Status(fiber.StatusForbidden).Render("forbidden", viewData(c, nil))
	}
	return post, nil
}

// renderPost loads a post with its comments and renders the post page.
func (h *PostHandler) renderPost(c *fiber.Ctx, id string, form models.CommentForm, errs map[string]string) error {
	post, err := h.postService.GetPostByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Redirect("/", fiber.StatusFound)
		}
		log.Printf("Error loading post %s: %v", id, err)
		return fiber.ErrInternalServerError
	}

	comments, err := h.commentService.GetCommentsForPost(id)
	if err != nil {
		log.Printf("Error loading comments for post %s: %v", id, err)
		return fiber.ErrInternalServerError
	}

	data := fiber.Map{
		"Post":     post,
		"Comments": comments,
		"Form":     form,
	}
	if errs != nil {
		data["Errors"] = errs
	}
	return c.Render("post", viewData(c, data))
}
