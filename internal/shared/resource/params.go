package resource

import (
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/shared"

	"github.com/gin-gonic/gin"
)

// Defaults applied when a list parameter is absent.
const (
	DefaultSortField = "id"
	DefaultSortOrder = "asc"
	DefaultPerPage   = 20
	DefaultFields    = "*"
)

// ListParams is the normalized query-parameter set of a list request.
// The date range fields are only bound for resources with a DateColumn.
type ListParams struct {
	SortField string `json:"sort_field"`
	SortOrder string `json:"sort_order"`
	PerPage   int    `json:"per_page"`
	Search    string `json:"search"`
	Fields    string `json:"fields"`
	DateFrom  string `json:"publish_date_from"`
	DateTo    string `json:"publish_date_to"`
}

// BindListParams reads the query string and applies defaults. A
// non-numeric per_page is bound as -1 so validation rejects it with a
// per-field message instead of silently defaulting.
func BindListParams(c *gin.Context, def Definition) ListParams {
	p := ListParams{
		SortField: queryOrDefault(c, "sort_field", DefaultSortField),
		SortOrder: queryOrDefault(c, "sort_order", DefaultSortOrder),
		PerPage:   DefaultPerPage,
		Search:    c.Query("search"),
		Fields:    queryOrDefault(c, "fields", DefaultFields),
	}

	if raw := c.Query("per_page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			parsed = -1
		}
		p.PerPage = parsed
	}

	if def.DateColumn != "" {
		p.DateFrom = c.Query(def.DateColumn + "_from")
		p.DateTo = c.Query(def.DateColumn + "_to")
	}

	return p
}

// Validate checks the parameter set against the resource definition.
// Returns an ozzo validation.Errors (per-field messages) on failure.
func (p ListParams) Validate(def Definition) error {
	fields := []*validation.FieldRules{
		validation.Field(&p.SortField,
			validation.In(toInterfaces(def.SortFields)...).
				Error("sort_field must be one of: "+strings.Join(def.SortFields, ", ")),
		),
		validation.Field(&p.SortOrder,
			validation.In("asc", "desc").Error("sort_order must be asc or desc"),
		),
		validation.Field(&p.PerPage,
			// Required first: ozzo threshold rules skip zero values.
			validation.Required.Error("per_page must be a positive integer"),
			validation.Min(1).Error("per_page must be a positive integer"),
		),
		validation.Field(&p.Fields, fieldsRule(def)),
	}

	if def.DateColumn != "" {
		fields = append(fields,
			validation.Field(&p.DateFrom,
				validation.Date(shared.DateLayout).Error("must match format YYYY-MM-DD"),
			),
			validation.Field(&p.DateTo,
				validation.Date(shared.DateLayout).Error("must match format YYYY-MM-DD"),
			),
		)
	}

	return validation.ValidateStruct(&p, fields...)
}

// ResolveFields expands "*" into the full column list and trims the
// comma-separated projection otherwise. Call after Validate.
func (p ListParams) ResolveFields(def Definition) []string {
	return ResolveFields(p.Fields, def)
}

func ResolveFields(fields string, def Definition) []string {
	if fields == "" || fields == DefaultFields {
		return def.Columns
	}
	parts := strings.Split(fields, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

// ValidateFields checks a bare fields parameter (show endpoint).
func ValidateFields(fields string, def Definition) error {
	err := validation.Validate(fields, fieldsRule(def))
	if err != nil {
		return validation.Errors{"fields": err}
	}
	return nil
}

// fieldsRule restricts projections to known columns. Unknown columns
// are rejected here with a 422 instead of surfacing as a database
// error.
func fieldsRule(def Definition) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if s == "" || s == DefaultFields {
			return nil
		}
		for _, field := range strings.Split(s, ",") {
			field = strings.TrimSpace(field)
			if !def.HasColumn(field) {
				return fmt.Errorf("unknown field %q", field)
			}
		}
		return nil
	})
}

// ParsePage reads the page query parameter; anything invalid falls
// back to the first page.
func ParsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// queryOrDefault treats an explicitly empty parameter the same as an
// absent one, so "?sort_field=" still sorts by the default.
func queryOrDefault(c *gin.Context, key, fallback string) string {
	if v := c.Query(key); v != "" {
		return v
	}
	return fallback
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
