package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/shared"
)

// StoreAuthorRequest is the create payload.
type StoreAuthorRequest struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	BirthDate string `json:"birth_date"`
}

func (r StoreAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Bio,
			validation.Required.Error("bio is required"),
		),
		validation.Field(&r.BirthDate,
			validation.Required.Error("birth_date is required"),
			validation.Date(shared.DateLayout).Error("birth_date must match format YYYY-MM-DD"),
		),
	)
}

// UpdateAuthorRequest is the partial update payload; absent fields are
// left unchanged.
type UpdateAuthorRequest struct {
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	BirthDate *string `json:"birth_date"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name cannot be empty"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Bio,
			validation.NilOrNotEmpty.Error("bio cannot be empty"),
		),
		validation.Field(&r.BirthDate,
			// The Date rule skips empty strings, so catch a present
			// but empty value here instead of failing later in ApplyTo.
			validation.NilOrNotEmpty.Error("birth_date cannot be empty"),
			validation.Date(shared.DateLayout).Error("birth_date must match format YYYY-MM-DD"),
		),
	)
}

// ApplyTo copies the submitted fields onto the loaded entity.
func (r UpdateAuthorRequest) ApplyTo(a *Author) error {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Bio != nil {
		a.Bio = *r.Bio
	}
	if r.BirthDate != nil {
		parsed, err := shared.ParseDate(*r.BirthDate)
		if err != nil {
			return err
		}
		a.BirthDate = parsed
	}
	return nil
}
