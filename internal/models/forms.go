package models

// Form structs bound from POST bodies and checked with validator tags.
// Field names match the HTML form inputs.

// RegisterForm is the sign-up form.
type RegisterForm struct {
	Name     string `form:"name" validate:"required,min=2,max=100"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

// LoginForm is the sign-in form.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// PostForm creates or edits a blog post.
type PostForm struct {
	Title    string `form:"title" validate:"required,max=250"`
	Subtitle string `form:"subtitle" validate:"required,max=250"`
	ImgURL   string `form:"img_url" validate:"required,url,max=250"`
	Body     string `form:"body" validate:"required"`
}

// CommentForm adds a comment under a post.
type CommentForm struct {
	Text string `form:"text" validate:"required"`
}

// ContactForm is the contact-page submission relayed by mail.
type ContactForm struct {
	Name    string `form:"name" validate:"required,max=100"`
	Email   string `form:"email" validate:"required,email"`
	Message string `form:"message" validate:"required"`
}
