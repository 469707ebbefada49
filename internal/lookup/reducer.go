package lookup

import "time"

// The reducers below are the only way a Cache changes. Each returns a new
// value; the bool result of Fulfilled and Rejected is false when requestID
// is no longer the latest and the state was left untouched.

// Initial is the empty state of an entity cache.
func Initial[T any](cfg EntityConfig) Cache[T] {
	limit := cfg.DefaultLimit
	if limit <= 0 {
		limit = DefaultLimit
	}
	return Cache[T]{
		Data:   []T{},
		Limit:  limit,
		Status: StatusIdle,
	}
}

// Pending marks a new request as the latest one.
func Pending[T any](c Cache[T], requestID string, q Query) Cache[T] {
	c.Loading = true
	c.Error = ""
	c.Status = StatusPending
	c.RequestID = requestID
	c.Fingerprint = Fingerprint(q)
	c.Query = q
	return c
}

// Fulfilled merges page into the cache.
func Fulfilled[T Identifiable](c Cache[T], requestID string, page Page[T], maxItems int, now time.Time) (Cache[T], bool) {
	if c.RequestID != requestID {
		return c, false
	}

	c.Data = Merge(c.Data, page, maxItems)
	c.Loading = false
	c.Error = ""
	c.Status = StatusFulfilled
	c.HasMore = page.Paginated && page.HasMore
	if page.Paginated {
		c.Offset = page.Offset
		if page.Limit > 0 {
			c.Limit = page.Limit
		}
	} else {
		c.Offset = 0
	}
	c.UpdatedAt = now
	return c, true
}

// Rejected records a failure. Data is kept so a transient failure does not
// blank an already populated list.
func Rejected[T any](c Cache[T], requestID string, message string) (Cache[T], bool) {
	if c.RequestID != requestID {
		return c, false
	}

	c.Loading = false
	c.Error = message
	c.Status = StatusRejected
	return c, true
}
