package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testDef = Definition{
	Singular:      "author",
	Plural:        "authors",
	Columns:       []string{"id", "name", "bio", "birth_date", "created_at", "updated_at"},
	SortFields:    []string{"id", "created_at", "name"},
	SearchColumns: [2]string{"name", "bio"},
}

var testDateDef = Definition{
	Singular:      "book",
	Plural:        "books",
	Columns:       []string{"id", "title", "description", "publish_date", "author_id", "created_at", "updated_at"},
	SortFields:    []string{"id", "title", "publish_date"},
	SearchColumns: [2]string{"title", "description"},
	DateColumn:    "publish_date",
}

func TestVersionKey(t *testing.T) {
	assert.Equal(t, "authors_cache_version", testDef.VersionKey())
	assert.Equal(t, "books_cache_version", testDateDef.VersionKey())
}

func TestListKey(t *testing.T) {
	params := ListParams{
		SortField: "id",
		SortOrder: "asc",
		PerPage:   20,
		Search:    "",
		Fields:    "*",
	}

	key := testDef.ListKey(1, 1, params)
	assert.Equal(t, "authors_v1_page_1_id_asc_20__*", key)
}

func TestListKeyWithDateRange(t *testing.T) {
	params := ListParams{
		SortField: "publish_date",
		SortOrder: "desc",
		PerPage:   10,
		Search:    "go",
		Fields:    "id,title",
		DateFrom:  "2020-01-01",
		DateTo:    "2020-12-31",
	}

	key := testDateDef.ListKey(3, 2, params)
	assert.Equal(t, "books_v3_page_2_publish_date_desc_10_go_2020-01-01_2020-12-31_id,title", key)
}

func TestListKeyChangesWithVersion(t *testing.T) {
	params := ListParams{SortField: "id", SortOrder: "asc", PerPage: 20, Fields: "*"}

	assert.NotEqual(t, testDef.ListKey(1, 1, params), testDef.ListKey(2, 1, params))
}

func TestItemKey(t *testing.T) {
	assert.Equal(t, "author_7_*", testDef.ItemKey(7, "*"))
	assert.Equal(t, "author_7_id,name", testDef.ItemKey(7, "id,name"))
	assert.Equal(t, "book_12_*", testDateDef.ItemKey(12, "*"))
}

func TestItemKeyPatternMatchesAllProjections(t *testing.T) {
	assert.Equal(t, "author_7_*", testDef.ItemKeyPattern(7))
}

func TestHasColumn(t *testing.T) {
	assert.True(t, testDef.HasColumn("name"))
	assert.True(t, testDef.HasColumn("birth_date"))
	assert.False(t, testDef.HasColumn("publish_date"))
	assert.False(t, testDef.HasColumn("password"))
}
