package api

import (
	"net/http"

	"github.com/FatimaNisar411/LinkVentory/internal/auth"
	"github.com/go-chi/chi/v5"
)

// registerUserRoutes registers the current-user route on r.
func registerUserRoutes(r chi.Router) {
	r.Get("/me", me)
}

// me returns the authenticated user.
// GET /api/v1/me
//
// @Summary      Current user
// @Description  Returns the account the presented token belongs to.
// @Tags         Users
// @Produce      json
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /me [get]
func me(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
