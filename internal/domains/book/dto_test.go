package book

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreBookRequestValid(t *testing.T) {
	req := StoreBookRequest{
		Title:       "The Dispossessed",
		Description: "An ambiguous utopia.",
		PublishDate: "1974-05-01",
		AuthorID:    3,
	}

	assert.NoError(t, req.Validate())
}

func TestStoreBookRequestMissingFields(t *testing.T) {
	err := StoreBookRequest{}.Validate()
	require.Error(t, err)

	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "description")
	assert.Contains(t, errs, "publish_date")
	assert.Contains(t, errs, "author_id")
}

func TestStoreBookRequestNegativeAuthorID(t *testing.T) {
	req := StoreBookRequest{
		Title:       "T",
		Description: "d",
		PublishDate: "2020-01-01",
		AuthorID:    -1,
	}

	err := req.Validate()
	require.Error(t, err)

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "author_id")
}

func TestStoreBookRequestMalformedDate(t *testing.T) {
	req := StoreBookRequest{
		Title:       "T",
		Description: "d",
		PublishDate: "May 1974",
		AuthorID:    1,
	}

	err := req.Validate()
	require.Error(t, err)

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "publish_date")
}

func TestUpdateBookRequestAllFieldsOptional(t *testing.T) {
	assert.NoError(t, UpdateBookRequest{}.Validate())
}

func TestUpdateBookRequestRejectsEmptyTitle(t *testing.T) {
	empty := ""
	err := UpdateBookRequest{Title: &empty}.Validate()
	require.Error(t, err)

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "title")
}

func TestUpdateBookRequestRejectsEmptyDate(t *testing.T) {
	empty := ""
	err := UpdateBookRequest{PublishDate: &empty}.Validate()
	require.Error(t, err, "a present but empty date must fail validation, not reach ApplyTo")

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "publish_date")
}

func TestUpdateBookRequestApplyTo(t *testing.T) {
	existing := &Book{ID: 9, Title: "Old", Description: "old", AuthorID: 1}

	title := "New Title"
	authorID := int64(2)
	date := "2021-06-15"
	req := UpdateBookRequest{Title: &title, AuthorID: &authorID, PublishDate: &date}

	require.NoError(t, req.ApplyTo(existing))
	assert.Equal(t, "New Title", existing.Title)
	assert.Equal(t, "old", existing.Description)
	assert.Equal(t, int64(2), existing.AuthorID)
	assert.Equal(t, "2021-06-15", existing.PublishDate.String())
}
