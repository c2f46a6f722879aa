package response

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Links holds the navigation URLs of a paginated response.
// Prev and Next are null on the first and last page respectively.
type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// Page is the envelope for paginated list responses.
type Page struct {
	Data        interface{} `json:"data"`
	CurrentPage int         `json:"current_page"`
	LastPage    int         `json:"last_page"`
	PerPage     int         `json:"per_page"`
	Total       int         `json:"total"`
	Links       Links       `json:"links"`
	Status      int         `json:"status"`
}

// Data writes a single-record envelope: {data, status}.
func Data(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data, "status": status})
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes {error, status} with a matching HTTP status code.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message, "status": status})
}

// ValidationErrors writes the 422 envelope with per-field messages.
// errs is typically an ozzo validation.Errors, which marshals as
// {"field": "message", ...}.
func ValidationErrors(c *gin.Context, errs interface{}) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"errors": errs,
		"status": http.StatusUnprocessableEntity,
	})
}

// Paginated writes the list envelope with navigation links derived from
// the request URL.
func Paginated(c *gin.Context, items interface{}, currentPage, perPage, total int) {
	lastPage := LastPage(total, perPage)

	links := Links{
		First: PageURL(c, 1),
		Last:  PageURL(c, lastPage),
	}
	if currentPage > 1 {
		prev := PageURL(c, currentPage-1)
		links.Prev = &prev
	}
	if currentPage < lastPage {
		next := PageURL(c, currentPage+1)
		links.Next = &next
	}

	c.JSON(http.StatusOK, Page{
		Data:        items,
		CurrentPage: currentPage,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
		Links:       links,
		Status:      http.StatusOK,
	})
}

// LastPage computes the number of the final page; never below 1.
func LastPage(total, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	last := (total + perPage - 1) / perPage
	if last < 1 {
		last = 1
	}
	return last
}

// PageURL rebuilds the request URL with the page parameter replaced,
// preserving every other query parameter.
func PageURL(c *gin.Context, page int) string {
	u := url.URL{
		Scheme: "http",
		Host:   c.Request.Host,
		Path:   c.Request.URL.Path,
	}
	if c.Request.TLS != nil {
		u.Scheme = "https"
	}

	q := c.Request.URL.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	return u.String()
}
