package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/resource"
	"library-backend/internal/shared/response"
	"library-backend/pkg/logger"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// Index - GET /api/authors
// Query params: sort_field, sort_order, per_page, search, fields, page
func (h *AuthorHandler) Index(c *gin.Context) {
	params := resource.BindListParams(c, author.Resource)
	if err := params.Validate(author.Resource); err != nil {
		response.ValidationErrors(c, err)
		return
	}

	page := resource.ParsePage(c)
	result, err := h.service.List(c.Request.Context(), params, page)
	if err != nil {
		logger.Error("failed to list authors", err)
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve authors.")
		return
	}

	response.Paginated(c, result.Items, page, params.PerPage, result.Total)
}

// Store - POST /api/authors
func (h *AuthorHandler) Store(c *gin.Context) {
	var req author.StoreAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, gin.H{"body": "must be valid JSON"})
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationErrors(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		logger.Error("failed to create author", err)
		response.Error(c, http.StatusInternalServerError, "Failed to create author.")
		return
	}

	response.Data(c, http.StatusCreated, created)
}

// Show - GET /api/authors/:id
// Query params: fields
func (h *AuthorHandler) Show(c *gin.Context) {
	id, ok := h.authorID(c)
	if !ok {
		return
	}

	fields := c.DefaultQuery("fields", resource.DefaultFields)
	if err := resource.ValidateFields(fields, author.Resource); err != nil {
		response.ValidationErrors(c, err)
		return
	}

	row, err := h.service.Get(c.Request.Context(), id, fields)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.Error(c, http.StatusNotFound, "Author not found.")
			return
		}
		logger.Error("failed to retrieve author", err)
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve author.")
		return
	}

	response.Data(c, http.StatusOK, row)
}

// Update - PUT/PATCH /api/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := h.authorID(c)
	if !ok {
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, gin.H{"body": "must be valid JSON"})
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationErrors(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.Error(c, http.StatusNotFound, "Author not found.")
			return
		}
		logger.Error("failed to update author", err)
		response.Error(c, http.StatusInternalServerError, "Failed to update author.")
		return
	}

	response.Data(c, http.StatusOK, updated)
}

// Destroy - DELETE /api/authors/:id
func (h *AuthorHandler) Destroy(c *gin.Context) {
	id, ok := h.authorID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.Error(c, http.StatusNotFound, "Author not found.")
			return
		}
		logger.Error("failed to delete author", err)
		response.Error(c, http.StatusInternalServerError, "Failed to delete author.")
		return
	}

	response.NoContent(c)
}

// Books - GET /api/authors/:id/books
func (h *AuthorHandler) Books(c *gin.Context) {
	id, ok := h.authorID(c)
	if !ok {
		return
	}

	page := resource.ParsePage(c)
	result, err := h.service.Books(c.Request.Context(), id, page)
	if err != nil {
		switch {
		case errors.Is(err, author.ErrAuthorNotFound):
			response.Error(c, http.StatusNotFound, "Author not found.")
		case errors.Is(err, author.ErrNoBooksFound):
			response.Error(c, http.StatusNotFound, "No books found for this author.")
		default:
			logger.Error("failed to retrieve author books", err)
			response.Error(c, http.StatusInternalServerError, "Failed to retrieve books.")
		}
		return
	}

	// Nested page object: the sub-resource keeps its paginator under
	// the data key.
	response.Data(c, http.StatusOK, gin.H{
		"data":         result.Items,
		"current_page": page,
		"last_page":    response.LastPage(result.Total, author.BooksPerPage),
		"per_page":     author.BooksPerPage,
		"total":        result.Total,
	})
}

// authorID parses the path id; anything non-numeric is a 404, matching
// the not-found taxonomy rather than surfacing a database error.
func (h *AuthorHandler) authorID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusNotFound, "Author not found.")
		return 0, false
	}
	return id, true
}
