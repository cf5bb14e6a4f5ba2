package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/FatimaNisar411/LinkVentory/internal/auth"
	"github.com/FatimaNisar411/LinkVentory/internal/store"
	"github.com/go-chi/chi/v5"
)

// categoriesAPIHandler provides REST handlers for category management.
type categoriesAPIHandler struct {
	categories *store.CategoryStore
}

// registerCategoryRoutes registers category routes on r.
func registerCategoryRoutes(r chi.Router, categories *store.CategoryStore) {
	h := &categoriesAPIHandler{categories: categories}
	r.Get("/categories", h.List)
	r.Post("/categories", h.Create)
	r.Put("/categories/{id}", h.Update)
	r.Delete("/categories/{id}", h.Delete)
}

// List returns the caller's categories, sorted by name.
// GET /api/v1/categories
//
// @Summary      List categories
// @Description  Returns categories owned by the caller.
// @Tags         Categories
// @Produce      json
// @Success      200  {object}  CategoryListResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /categories [get]
func (h *categoriesAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	categories, err := h.categories.ListByOwner(r.Context(), user.ID)
	if err != nil {
		log.Printf("api: list categories: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := CategoryListResponse{Categories: make([]CategoryResponse, 0, len(categories))}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, toCategoryResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create stores a new category owned by the caller.
// POST /api/v1/categories
//
// @Summary      Create a category
// @Description  Creates a new category. The caller becomes its owner.
// @Tags         Categories
// @Accept       json
// @Produce      json
// @Param        body  body      CreateCategoryRequest  true  "Category to create"
// @Success      201   {object}  CategoryResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /categories [post]
func (h *categoriesAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "name is required", "BAD_REQUEST")
		return
	}

	category, err := h.categories.Create(r.Context(), user.ID, req.Name)
	if err != nil {
		log.Printf("api: create category: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(category))
}

// Update renames a category. Owner only.
// PUT /api/v1/categories/{id}
//
// @Summary      Update a category
// @Description  Renames a category. Categories owned by other users read as not found.
// @Tags         Categories
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Category ID"
// @Param        body  body      UpdateCategoryRequest  true  "New name"
// @Success      200   {object}  CategoryResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /categories/{id} [put]
func (h *categoriesAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	category, err := h.loadOwned(w, r, user.ID)
	if category == nil || err != nil {
		return
	}

	var req UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "name is required", "BAD_REQUEST")
		return
	}

	updated, err := h.categories.Update(r.Context(), category.ID, req.Name)
	if err != nil {
		log.Printf("api: update category %s: %v", category.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(updated))
}

// Delete removes a category. Owner only. Links keep their category_id; a
// dangling id simply filters to an empty list.
// DELETE /api/v1/categories/{id}
//
// @Summary      Delete a category
// @Description  Deletes a category by ID. Categories owned by other users read as not found.
// @Tags         Categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /categories/{id} [delete]
func (h *categoriesAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	category, err := h.loadOwned(w, r, user.ID)
	if category == nil || err != nil {
		return
	}

	if err := h.categories.Delete(r.Context(), category.ID); err != nil {
		log.Printf("api: delete category %s: %v", category.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// loadOwned fetches the category named in the URL and runs the ownership
// guard, collapsing missing and not-yours into the same 404.
func (h *categoriesAPIHandler) loadOwned(w http.ResponseWriter, r *http.Request, ownerID string) (*store.Category, error) {
	category, err := h.categories.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "category not found", "NOT_FOUND")
			return nil, err
		}
		log.Printf("api: load category: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return nil, err
	}
	if err := store.Authorize(category, ownerID); err != nil {
		writeError(w, http.StatusNotFound, "category not found", "NOT_FOUND")
		return nil, err
	}
	return category, nil
}

func toCategoryResponse(c *store.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
