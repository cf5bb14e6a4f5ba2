package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/FatimaNisar411/LinkVentory/internal/auth"
	"github.com/FatimaNisar411/LinkVentory/internal/store"
	"github.com/go-chi/chi/v5"
)

// linksAPIHandler provides REST handlers for link management.
type linksAPIHandler struct {
	links *store.LinkStore
}

// registerLinkRoutes registers link routes on r.
func registerLinkRoutes(r chi.Router, links *store.LinkStore) {
	h := &linksAPIHandler{links: links}
	r.Get("/links", h.List)
	r.Post("/links", h.Create)
	r.Get("/links/{id}", h.Get)
	r.Patch("/links/{id}", h.Update)
	r.Delete("/links/{id}", h.Delete)
	r.Get("/links/category/{categoryID}", h.ListByCategory)
}

// validateLinkURL requires an absolute http or https URL. The scheme the
// caller supplied is stored as-is; this service does not rewrite http to
// https behind the user's back.
func validateLinkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.New("url must be a valid absolute URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("url must be absolute with an http or https scheme")
	}
	return nil
}

// List returns the caller's links, optionally filtered by category.
// GET /api/v1/links?category_id=...
//
// @Summary      List links
// @Description  Returns links owned by the caller, newest first.
// @Tags         Links
// @Produce      json
// @Param        category_id  query     string  false  "Filter by category"
// @Success      200  {object}  LinkListResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /links [get]
func (h *linksAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	links, err := h.links.ListByOwner(r.Context(), user.ID, r.URL.Query().Get("category_id"))
	if err != nil {
		log.Printf("api: list links: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, toLinkListResponse(links))
}

// ListByCategory returns the caller's links in one category.
// GET /api/v1/links/category/{categoryID}
//
// @Summary      List links by category
// @Description  Returns the caller's links belonging to the given category.
// @Tags         Links
// @Produce      json
// @Param        categoryID  path      string  true  "Category ID"
// @Success      200  {object}  LinkListResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /links/category/{categoryID} [get]
func (h *linksAPIHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	links, err := h.links.ListByOwner(r.Context(), user.ID, chi.URLParam(r, "categoryID"))
	if err != nil {
		log.Printf("api: list links by category: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, toLinkListResponse(links))
}

// Create stores a new link owned by the caller.
// POST /api/v1/links
//
// @Summary      Create a link
// @Description  Stores a new link. The caller becomes its owner.
// @Tags         Links
// @Accept       json
// @Produce      json
// @Param        body  body      CreateLinkRequest  true  "Link to create"
// @Success      201   {object}  LinkResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /links [post]
func (h *linksAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "url and title are required", "BAD_REQUEST")
		return
	}
	if err := validateLinkURL(req.URL); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_URL")
		return
	}

	link, err := h.links.Create(r.Context(), user.ID, req.URL, req.Title, req.Note, req.CategoryID)
	if err != nil {
		log.Printf("api: create link: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusCreated, toLinkResponse(link))
}

// Get returns a single link by ID. Owner only.
// GET /api/v1/links/{id}
//
// @Summary      Get a link
// @Description  Returns a single link by ID. Links owned by other users read as not found.
// @Tags         Links
// @Produce      json
// @Param        id   path      string  true  "Link ID"
// @Success      200  {object}  LinkResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /links/{id} [get]
func (h *linksAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	link, err := h.loadOwned(w, r, user.ID)
	if link == nil || err != nil {
		return
	}

	writeJSON(w, http.StatusOK, toLinkResponse(link))
}

// Update applies a partial update to a link. Owner only; only fields present
// in the body change.
// PATCH /api/v1/links/{id}
//
// @Summary      Update a link
// @Description  Partially updates url, title, note, or category. Absent fields are untouched.
// @Tags         Links
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Link ID"
// @Param        body  body      UpdateLinkRequest  true  "Fields to update"
// @Success      200   {object}  LinkResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /links/{id} [patch]
func (h *linksAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	link, err := h.loadOwned(w, r, user.ID)
	if link == nil || err != nil {
		return
	}

	var req UpdateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	newURL := link.URL
	if req.URL != nil {
		if err := validateLinkURL(*req.URL); err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "INVALID_URL")
			return
		}
		newURL = *req.URL
	}
	title := link.Title
	if req.Title != nil {
		if *req.Title == "" {
			writeError(w, http.StatusBadRequest, "title cannot be empty", "BAD_REQUEST")
			return
		}
		title = *req.Title
	}
	note := link.Note
	if req.Note != nil {
		note = *req.Note
	}
	categoryID := link.CategoryID
	if req.CategoryID != nil {
		categoryID = *req.CategoryID
	}

	updated, err := h.links.Update(r.Context(), link.ID, newURL, title, note, categoryID)
	if err != nil {
		log.Printf("api: update link %s: %v", link.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, toLinkResponse(updated))
}

// Delete removes a link. Owner only.
// DELETE /api/v1/links/{id}
//
// @Summary      Delete a link
// @Description  Deletes a link by ID. Links owned by other users read as not found.
// @Tags         Links
// @Produce      json
// @Param        id   path      string  true  "Link ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /links/{id} [delete]
func (h *linksAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	link, err := h.loadOwned(w, r, user.ID)
	if link == nil || err != nil {
		return
	}

	if err := h.links.Delete(r.Context(), link.ID); err != nil {
		log.Printf("api: delete link %s: %v", link.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// loadOwned fetches the link named in the URL and runs the ownership guard.
// On any failure it writes the response itself and returns nil: a missing
// link and someone else's link produce the same 404.
func (h *linksAPIHandler) loadOwned(w http.ResponseWriter, r *http.Request, ownerID string) (*store.Link, error) {
	link, err := h.links.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "link not found", "NOT_FOUND")
			return nil, err
		}
		log.Printf("api: load link: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return nil, err
	}
	if err := store.Authorize(link, ownerID); err != nil {
		writeError(w, http.StatusNotFound, "link not found", "NOT_FOUND")
		return nil, err
	}
	return link, nil
}

func toLinkResponse(l *store.Link) LinkResponse {
	return LinkResponse{
		ID:         l.ID,
		OwnerID:    l.OwnerID,
		URL:        l.URL,
		Title:      l.Title,
		Note:       l.Note,
		CategoryID: l.CategoryID,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func toLinkListResponse(links []*store.Link) LinkListResponse {
	resp := LinkListResponse{Links: make([]LinkResponse, 0, len(links))}
	for _, l := range links {
		resp.Links = append(resp.Links, toLinkResponse(l))
	}
	return resp
}
