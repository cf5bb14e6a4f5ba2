package api

import "time"

// --- Auth types ---

// SignupRequest is the request body for POST /api/v1/signup.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the request body for POST /api/v1/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by signup and login.
type TokenResponse struct {
	Message     string `json:"message,omitempty"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the JSON representation of a user. The credential hash is
// deliberately absent.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Link types ---

// CreateLinkRequest is the request body for POST /api/v1/links.
type CreateLinkRequest struct {
	URL        string `json:"url" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Note       string `json:"note,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
}

// UpdateLinkRequest is the request body for PATCH /api/v1/links/{id}.
// Pointer fields distinguish "not sent" from "set to empty".
type UpdateLinkRequest struct {
	URL        *string `json:"url,omitempty"`
	Title      *string `json:"title,omitempty"`
	Note       *string `json:"note,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
}

// LinkResponse is the JSON representation of a single link.
type LinkResponse struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	Note       string    `json:"note"`
	CategoryID string    `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LinkListResponse wraps link list endpoints.
type LinkListResponse struct {
	Links []LinkResponse `json:"links"`
}

// --- Category types ---

// CreateCategoryRequest is the request body for POST /api/v1/categories.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateCategoryRequest is the request body for PUT /api/v1/categories/{id}.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CategoryResponse is the JSON representation of a category.
type CategoryResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse wraps category list endpoints.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
