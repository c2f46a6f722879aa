package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/shared"
)

// StoreBookRequest is the create payload.
type StoreBookRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishDate string `json:"publish_date"`
	AuthorID    int64  `json:"author_id"`
}

func (r StoreBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
		),
		validation.Field(&r.PublishDate,
			validation.Required.Error("publish_date is required"),
			validation.Date(shared.DateLayout).Error("publish_date must match format YYYY-MM-DD"),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
			validation.Min(1).Error("author_id must be a positive integer"),
		),
	)
}

// UpdateBookRequest is the partial update payload; absent fields are
// left unchanged.
type UpdateBookRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	PublishDate *string `json:"publish_date"`
	AuthorID    *int64  `json:"author_id"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Description,
			validation.NilOrNotEmpty.Error("description cannot be empty"),
		),
		validation.Field(&r.PublishDate,
			// The Date rule skips empty strings, so catch a present
			// but empty value here instead of failing later in ApplyTo.
			validation.NilOrNotEmpty.Error("publish_date cannot be empty"),
			validation.Date(shared.DateLayout).Error("publish_date must match format YYYY-MM-DD"),
		),
		validation.Field(&r.AuthorID,
			validation.Min(1).Error("author_id must be a positive integer"),
		),
	)
}

// ApplyTo copies the submitted fields onto the loaded entity.
func (r UpdateBookRequest) ApplyTo(b *Book) error {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Description != nil {
		b.Description = *r.Description
	}
	if r.PublishDate != nil {
		parsed, err := shared.ParseDate(*r.PublishDate)
		if err != nil {
			return err
		}
		b.PublishDate = parsed
	}
	if r.AuthorID != nil {
		b.AuthorID = *r.AuthorID
	}
	return nil
}
