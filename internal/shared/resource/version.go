package resource

import (
	"context"

	"library-backend/pkg/cache"
)

// ListResult is the cached portion of a list page: the projected rows
// and the total row count. Envelope links are rebuilt per request.
type ListResult struct {
	Items []map[string]interface{} `json:"items"`
	Total int                      `json:"total"`
}

// Version reads the resource's list-cache version counter,
// initializing it to 1 on first use. SetNX keeps concurrent first
// readers from clobbering a bump that landed in between.
func Version(ctx context.Context, c cache.Cache, def Definition) (int64, error) {
	key := def.VersionKey()

	var version int64
	found, err := c.Get(ctx, key, &version)
	if err != nil {
		return 0, err
	}
	if found {
		return version, nil
	}

	if _, err := c.SetNX(ctx, key, int64(1), 0); err != nil {
		return 0, err
	}
	if _, err := c.Get(ctx, key, &version); err != nil {
		return 0, err
	}
	if version == 0 {
		version = 1
	}
	return version, nil
}

// BumpVersion invalidates every cached list page of the resource in
// O(1): the atomic increment orphans all keys built from the previous
// version, and their TTL reclaims them.
func BumpVersion(ctx context.Context, c cache.Cache, def Definition) error {
	_, err := c.Increment(ctx, def.VersionKey())
	return err
}
