package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", target, nil)
	c.Request.Host = "example.test"
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestDataEnvelope(t *testing.T) {
	c, rec := testContext(t, "/api/authors/1")

	Data(c, http.StatusCreated, gin.H{"id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(201), body["status"])
	assert.Contains(t, body, "data")
}

func TestNoContent(t *testing.T) {
	c, rec := testContext(t, "/api/authors/1")

	NoContent(c)
	// gin defers the header write until a body is written or the request
	// ends; flush it so the recorder sees the status, as gin itself does
	// at the end of a real request.
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorEnvelope(t *testing.T) {
	c, rec := testContext(t, "/api/authors/99")

	Error(c, http.StatusNotFound, "Author not found.")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Author not found.", body["error"])
	assert.Equal(t, float64(404), body["status"])
}

func TestValidationErrorsEnvelope(t *testing.T) {
	c, rec := testContext(t, "/api/authors")

	ValidationErrors(c, gin.H{"name": "name is required"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode(t, rec)
	errs := body["errors"].(map[string]interface{})
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, float64(422), body["status"])
}

func TestPaginatedMiddlePage(t *testing.T) {
	c, rec := testContext(t, "/api/books?page=2&per_page=10&search=go")

	Paginated(c, []string{"a"}, 2, 10, 30)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(2), body["current_page"])
	assert.Equal(t, float64(3), body["last_page"])
	assert.Equal(t, float64(10), body["per_page"])
	assert.Equal(t, float64(30), body["total"])
	assert.Equal(t, float64(200), body["status"])

	links := body["links"].(map[string]interface{})
	assert.Equal(t, "http://example.test/api/books?page=1&per_page=10&search=go", links["first"])
	assert.Equal(t, "http://example.test/api/books?page=3&per_page=10&search=go", links["last"])
	assert.Equal(t, "http://example.test/api/books?page=1&per_page=10&search=go", links["prev"])
	assert.Equal(t, "http://example.test/api/books?page=3&per_page=10&search=go", links["next"])
}

func TestPaginatedBoundaryPages(t *testing.T) {
	c, rec := testContext(t, "/api/books?page=1")
	Paginated(c, []string{}, 1, 20, 40)

	links := decode(t, rec)["links"].(map[string]interface{})
	assert.Nil(t, links["prev"])
	assert.NotNil(t, links["next"])

	c, rec = testContext(t, "/api/books?page=2")
	Paginated(c, []string{}, 2, 20, 40)

	links = decode(t, rec)["links"].(map[string]interface{})
	assert.NotNil(t, links["prev"])
	assert.Nil(t, links["next"])
}

func TestPaginatedEmptyResult(t *testing.T) {
	c, rec := testContext(t, "/api/books")
	Paginated(c, []string{}, 1, 20, 0)

	body := decode(t, rec)
	assert.Equal(t, float64(1), body["last_page"])

	links := body["links"].(map[string]interface{})
	assert.Nil(t, links["prev"])
	assert.Nil(t, links["next"])
}

func TestLastPage(t *testing.T) {
	assert.Equal(t, 1, LastPage(0, 20))
	assert.Equal(t, 1, LastPage(20, 20))
	assert.Equal(t, 2, LastPage(21, 20))
	assert.Equal(t, 3, LastPage(30, 10))
	assert.Equal(t, 1, LastPage(5, 0))
}
