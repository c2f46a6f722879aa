package resource

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/shared"
)

// ErrNotFound is returned by GetRow when no row matches the id.
// Domain repositories translate it into their own sentinel.
var ErrNotFound = errors.New("resource not found")

// ListFilter carries the resolved query inputs for ListRows.
type ListFilter struct {
	Fields    []string
	Search    string
	DateFrom  string
	DateTo    string
	SortField string
	SortOrder string
	Limit     int
	Offset    int
}

// ListRows runs the filtered/sorted/paginated SELECT plus a COUNT with
// the same WHERE clause. Sort and projection inputs must already be
// validated against the definition; they are interpolated into SQL.
func ListRows(ctx context.Context, pool *pgxpool.Pool, def Definition, f ListFilter) ([]map[string]interface{}, int, error) {
	whereClause, args := buildWhere(def, f)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, def.Plural, whereClause)
	var total int
	if err := pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		strings.Join(f.Fields, ", "),
		def.Plural,
		whereClause,
		f.SortField,
		strings.ToUpper(f.SortOrder),
		len(args)+1,
		len(args)+2,
	)
	args = append(args, f.Limit, f.Offset)

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list query failed: %w", err)
	}

	items, err := CollectRowMaps(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetRow fetches one row by id with the requested projection.
func GetRow(ctx context.Context, pool *pgxpool.Pool, def Definition, id int64, fields []string) (map[string]interface{}, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`,
		strings.Join(fields, ", "), def.Plural)

	rows, err := pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get query failed: %w", err)
	}

	items, err := CollectRowMaps(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items[0], nil
}

// buildWhere assembles the search and date-range conditions. The
// substring search is case-sensitive and unanchored, grouped with OR
// across the two text columns, AND-ed with the date range.
func buildWhere(def Definition, f ListFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if f.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(%s LIKE $%d OR %s LIKE $%d)",
			def.SearchColumns[0], argIndex, def.SearchColumns[1], argIndex))
		args = append(args, "%"+f.Search+"%")
		argIndex++
	}

	if def.DateColumn != "" {
		switch {
		case f.DateFrom != "" && f.DateTo != "":
			conditions = append(conditions, fmt.Sprintf("%s BETWEEN $%d AND $%d",
				def.DateColumn, argIndex, argIndex+1))
			args = append(args, f.DateFrom, f.DateTo)
			argIndex += 2
		case f.DateFrom != "":
			conditions = append(conditions, fmt.Sprintf("%s >= $%d", def.DateColumn, argIndex))
			args = append(args, f.DateFrom)
			argIndex++
		case f.DateTo != "":
			conditions = append(conditions, fmt.Sprintf("%s <= $%d", def.DateColumn, argIndex))
			args = append(args, f.DateTo)
			argIndex++
		}
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// CollectRowMaps scans every row into a column-name keyed map, so the
// response contains exactly the projected fields. DATE columns are
// normalized to their YYYY-MM-DD form.
func CollectRowMaps(rows pgx.Rows) ([]map[string]interface{}, error) {
	defer rows.Close()

	descriptions := rows.FieldDescriptions()
	items := []map[string]interface{}{}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		item := make(map[string]interface{}, len(descriptions))
		for i, fd := range descriptions {
			item[fd.Name] = normalizeValue(fd, values[i])
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return items, nil
}

func normalizeValue(fd pgconn.FieldDescription, value interface{}) interface{} {
	if t, ok := value.(time.Time); ok && fd.DataTypeOID == pgtype.DateOID {
		return t.Format(shared.DateLayout)
	}
	return value
}
