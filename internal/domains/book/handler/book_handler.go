package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/resource"
	"library-backend/internal/shared/response"
	"library-backend/pkg/logger"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// Index - GET /api/books
// Query params: sort_field, sort_order, per_page, search, fields,
// publish_date_from, publish_date_to, page
func (h *BookHandler) Index(c *gin.Context) {
	params := resource.BindListParams(c, book.Resource)
	if err := params.Validate(book.Resource); err != nil {
		response.ValidationErrors(c, err)
		return
	}

	page := resource.ParsePage(c)
	result, err := h.service.List(c.Request.Context(), params, page)
	if err != nil {
		logger.Error("failed to list books", err)
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve books.")
		return
	}

	response.Paginated(c, result.Items, page, params.PerPage, result.Total)
}

// Store - POST /api/books
func (h *BookHandler) Store(c *gin.Context) {
	var req book.StoreBookRequest
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
		if errors.Is(err, book.ErrAuthorMissing) {
			response.ValidationErrors(c, gin.H{"author_id": "author_id must reference an existing author"})
			return
		}
		logger.Error("failed to create book", err)
		response.Error(c, http.StatusInternalServerError, "Failed to create book.")
		return
	}

	response.Data(c, http.StatusCreated, created)
}

// Show - GET /api/books/:id
// Query params: fields
func (h *BookHandler) Show(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	fields := c.DefaultQuery("fields", resource.DefaultFields)
	if err := resource.ValidateFields(fields, book.Resource); err != nil {
		response.ValidationErrors(c, err)
		return
	}

	row, err := h.service.Get(c.Request.Context(), id, fields)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.Error(c, http.StatusNotFound, "Book not found.")
			return
		}
		logger.Error("failed to retrieve book", err)
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve book.")
		return
	}

	response.Data(c, http.StatusOK, row)
}

// Update - PUT/PATCH /api/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	var req book.UpdateBookRequest
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
		switch {
		case errors.Is(err, book.ErrBookNotFound):
			response.Error(c, http.StatusNotFound, "Book not found.")
		case errors.Is(err, book.ErrAuthorMissing):
			response.ValidationErrors(c, gin.H{"author_id": "author_id must reference an existing author"})
		default:
			logger.Error("failed to update book", err)
			response.Error(c, http.StatusInternalServerError, "Failed to update book.")
		}
		return
	}

	response.Data(c, http.StatusOK, updated)
}

// Destroy - DELETE /api/books/:id
func (h *BookHandler) Destroy(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.Error(c, http.StatusNotFound, "Book not found.")
			return
		}
		logger.Error("failed to delete book", err)
		response.Error(c, http.StatusInternalServerError, "Failed to delete book.")
		return
	}

	response.NoContent(c)
}

// bookID parses the path id; anything non-numeric is a 404, matching
// the not-found taxonomy rather than surfacing a database error.
func (h *BookHandler) bookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusNotFound, "Book not found.")
		return 0, false
	}
	return id, true
}
