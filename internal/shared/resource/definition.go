// Package resource factors out the behavior the author and book
// endpoints share: validated list parameters, versioned cache keys, and
// the filtered/sorted/paginated SQL that backs them. Each domain
// instantiates a Definition instead of duplicating the logic.
package resource

import (
	"fmt"
	"strconv"
	"strings"
)

// Definition describes one REST resource backed by a table.
type Definition struct {
	Singular string   // cache-key prefix for single items, e.g. "author"
	Plural   string   // table name and list cache-key prefix, e.g. "authors"
	Columns  []string // selectable columns, in table order

	SortFields    []string  // allowed sort_field values
	SearchColumns [2]string // primary and secondary text columns for search

	// DateColumn enables the <column>_from / <column>_to range filter
	// when non-empty (books: "publish_date").
	DateColumn string

	NotFoundMessage string // e.g. "Author not found."
}

func (d Definition) HasColumn(name string) bool {
	for _, col := range d.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// VersionKey is the cache key of the resource's list version counter.
func (d Definition) VersionKey() string {
	return d.Plural + "_cache_version"
}

// ListKey composes the list cache key from the version counter and
// every query parameter, so any parameter change addresses a different
// entry and a version bump orphans all previous pages at once.
func (d Definition) ListKey(version int64, page int, p ListParams) string {
	parts := []string{
		fmt.Sprintf("%s_v%d_page_%d", d.Plural, version, page),
		p.SortField,
		p.SortOrder,
		strconv.Itoa(p.PerPage),
		p.Search,
	}
	if d.DateColumn != "" {
		parts = append(parts, p.DateFrom, p.DateTo)
	}
	parts = append(parts, p.Fields)
	return strings.Join(parts, "_")
}

// ItemKey is the single-item cache key for an id and field projection.
func (d Definition) ItemKey(id int64, fields string) string {
	return fmt.Sprintf("%s_%d_%s", d.Singular, id, fields)
}

// ItemKeyPattern matches every projection variant of one item's cache
// entries, for invalidation on update/delete.
func (d Definition) ItemKeyPattern(id int64) string {
	return fmt.Sprintf("%s_%d_*", d.Singular, id)
}
