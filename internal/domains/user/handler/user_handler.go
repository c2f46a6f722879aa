package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/response"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me - GET /api/user
// Returns the authenticated caller's identity from the JWT claims the
// auth middleware stored in the context.
func (h *UserHandler) Me(c *gin.Context) {
	response.Data(c, http.StatusOK, gin.H{
		"id":    c.GetString("userID"),
		"email": c.GetString("userEmail"),
	})
}
