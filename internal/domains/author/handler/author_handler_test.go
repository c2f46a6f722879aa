package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared"
	"library-backend/internal/shared/resource"
)

type fakeAuthorService struct {
	listResult  *resource.ListResult
	row         map[string]interface{}
	created     *author.Author
	updated     *author.Author
	booksResult *resource.ListResult
	err         error
}

func (s *fakeAuthorService) List(ctx context.Context, params resource.ListParams, page int) (*resource.ListResult, error) {
	return s.listResult, s.err
}

func (s *fakeAuthorService) Get(ctx context.Context, id int64, fields string) (map[string]interface{}, error) {
	return s.row, s.err
}

func (s *fakeAuthorService) Create(ctx context.Context, req *author.StoreAuthorRequest) (*author.Author, error) {
	return s.created, s.err
}

func (s *fakeAuthorService) Update(ctx context.Context, id int64, req *author.UpdateAuthorRequest) (*author.Author, error) {
	return s.updated, s.err
}

func (s *fakeAuthorService) Delete(ctx context.Context, id int64) error {
	return s.err
}

func (s *fakeAuthorService) Books(ctx context.Context, authorID int64, page int) (*resource.ListResult, error) {
	return s.booksResult, s.err
}

func newRouter(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthorHandler(svc)

	router := gin.New()
	authors := router.Group("/api/authors")
	{
		authors.GET("", h.Index)
		authors.POST("", h.Store)
		authors.GET("/:id", h.Show)
		authors.PUT("/:id", h.Update)
		authors.PATCH("/:id", h.Update)
		authors.DELETE("/:id", h.Destroy)
		authors.GET("/:id/books", h.Books)
	}
	return router
}

func perform(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestIndexReturnsPaginatedEnvelope(t *testing.T) {
	svc := &fakeAuthorService{listResult: &resource.ListResult{
		Items: []map[string]interface{}{{"id": int64(1), "name": "A"}},
		Total: 30,
	}}
	router := newRouter(svc)

	rec := perform(t, router, "GET", "/api/authors?per_page=10&page=2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(2), body["current_page"])
	assert.Equal(t, float64(3), body["last_page"])
	assert.Equal(t, float64(10), body["per_page"])
	assert.Equal(t, float64(30), body["total"])
	assert.Contains(t, body, "links")
	assert.Contains(t, body, "data")
}

func TestIndexRejectsUnknownSortField(t *testing.T) {
	router := newRouter(&fakeAuthorService{})

	rec := perform(t, router, "GET", "/api/authors?sort_field=bio", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errs := decode(t, rec)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "sort_field")
}

func TestStoreCreated(t *testing.T) {
	birth, _ := shared.ParseDate("1929-10-21")
	svc := &fakeAuthorService{created: &author.Author{ID: 1, Name: "A", Bio: "b", BirthDate: birth}}
	router := newRouter(svc)

	rec := perform(t, router, "POST", "/api/authors",
		`{"name":"A","bio":"b","birth_date":"1929-10-21"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(201), body["status"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "A", data["name"])
	assert.Equal(t, "1929-10-21", data["birth_date"])
}

func TestStoreRejectsInvalidJSON(t *testing.T) {
	router := newRouter(&fakeAuthorService{})

	rec := perform(t, router, "POST", "/api/authors", `{"name":`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errs := decode(t, rec)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "body")
}

func TestStoreRejectsMissingFields(t *testing.T) {
	router := newRouter(&fakeAuthorService{})

	rec := perform(t, router, "POST", "/api/authors", `{}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errs := decode(t, rec)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "bio")
	assert.Contains(t, errs, "birth_date")
}

func TestShowNotFound(t *testing.T) {
	router := newRouter(&fakeAuthorService{err: author.ErrAuthorNotFound})

	rec := perform(t, router, "GET", "/api/authors/99", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Author not found.", decode(t, rec)["error"])
}

func TestShowNonNumericID(t *testing.T) {
	router := newRouter(&fakeAuthorService{})

	rec := perform(t, router, "GET", "/api/authors/abc", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Author not found.", decode(t, rec)["error"])
}

func TestShowRejectsUnknownProjection(t *testing.T) {
	router := newRouter(&fakeAuthorService{})

	rec := perform(t, router, "GET", "/api/authors/1?fields=id,password", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errs := decode(t, rec)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "fields")
}

func TestShowReturnsRow(t *testing.T) {
	svc := &fakeAuthorService{row: map[string]interface{}{"id": int64(1), "name": "A"}}
	router := newRouter(svc)

	rec := perform(t, router, "GET", "/api/authors/1?fields=id,name", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "A", data["name"])
}

func TestUpdateNotFound(t *testing.T) {
	router := newRouter(&fakeAuthorService{err: author.ErrAuthorNotFound})

	rec := perform(t, router, "PUT", "/api/authors/99", `{"name":"X"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Author not found.", decode(t, rec)["error"])
}

func TestDestroyNoContent(t *testing.T) {
	router := newRouter(&fakeAuthorService{})

	rec := perform(t, router, "DELETE", "/api/authors/1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDestroyNotFound(t *testing.T) {
	router := newRouter(&fakeAuthorService{err: author.ErrAuthorNotFound})

	rec := perform(t, router, "DELETE", "/api/authors/99", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Author not found.", decode(t, rec)["error"])
}

func TestBooksAuthorNotFound(t *testing.T) {
	router := newRouter(&fakeAuthorService{err: author.ErrAuthorNotFound})

	rec := perform(t, router, "GET", "/api/authors/99/books", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Author not found.", decode(t, rec)["error"])
}

func TestBooksNoBooksFound(t *testing.T) {
	router := newRouter(&fakeAuthorService{err: author.ErrNoBooksFound})

	rec := perform(t, router, "GET", "/api/authors/1/books", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No books found for this author.", decode(t, rec)["error"])
}

func TestBooksNestedEnvelope(t *testing.T) {
	svc := &fakeAuthorService{booksResult: &resource.ListResult{
		Items: []map[string]interface{}{{"id": int64(10), "title": "Book"}},
		Total: 45,
	}}
	router := newRouter(svc)

	rec := perform(t, router, "GET", "/api/authors/1/books?page=2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(200), body["status"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["current_page"])
	assert.Equal(t, float64(3), data["last_page"])
	assert.Equal(t, float64(20), data["per_page"])
	assert.Equal(t, float64(45), data["total"])
	assert.Contains(t, data, "data")
}
