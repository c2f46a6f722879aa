package author

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/shared"
)

func TestStoreAuthorRequestValid(t *testing.T) {
	req := StoreAuthorRequest{
		Name:      "Ursula K. Le Guin",
		Bio:       "American author.",
		BirthDate: "1929-10-21",
	}

	assert.NoError(t, req.Validate())
}

func TestStoreAuthorRequestMissingFields(t *testing.T) {
	err := StoreAuthorRequest{}.Validate()
	require.Error(t, err)

	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "bio")
	assert.Contains(t, errs, "birth_date")
}

func TestStoreAuthorRequestNameTooLong(t *testing.T) {
	req := StoreAuthorRequest{
		Name:      strings.Repeat("x", 256),
		Bio:       "bio",
		BirthDate: "1980-01-01",
	}

	err := req.Validate()
	require.Error(t, err)

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "name")
}

func TestStoreAuthorRequestMalformedDate(t *testing.T) {
	req := StoreAuthorRequest{
		Name:      "A",
		Bio:       "b",
		BirthDate: "21-10-1929",
	}

	err := req.Validate()
	require.Error(t, err)

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "birth_date")
}

func TestUpdateAuthorRequestAllFieldsOptional(t *testing.T) {
	assert.NoError(t, UpdateAuthorRequest{}.Validate())
}

func TestUpdateAuthorRequestRejectsEmptyName(t *testing.T) {
	empty := ""
	err := UpdateAuthorRequest{Name: &empty}.Validate()
	require.Error(t, err)

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "name")
}

func TestUpdateAuthorRequestRejectsEmptyDate(t *testing.T) {
	empty := ""
	err := UpdateAuthorRequest{BirthDate: &empty}.Validate()
	require.Error(t, err, "a present but empty date must fail validation, not reach ApplyTo")

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "birth_date")
}

func TestUpdateAuthorRequestApplyTo(t *testing.T) {
	birth, err := shared.ParseDate("1929-10-21")
	require.NoError(t, err)

	existing := &Author{ID: 1, Name: "Old", Bio: "old bio", BirthDate: birth}

	name := "New Name"
	date := "1930-01-02"
	req := UpdateAuthorRequest{Name: &name, BirthDate: &date}

	require.NoError(t, req.ApplyTo(existing))
	assert.Equal(t, "New Name", existing.Name)
	assert.Equal(t, "old bio", existing.Bio)
	assert.Equal(t, "1930-01-02", existing.BirthDate.String())
}
