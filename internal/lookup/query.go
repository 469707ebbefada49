package lookup

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"erp-lookup/pkg/apperror"
)

// DefaultLimit is the page size used when neither the caller nor the entity
// supplies one.
const DefaultLimit = 20

// NormalizeQuery fills missing fields. Keyword stays a string, a zero Limit
// takes the default and entity filters are merged under the caller's.
func NormalizeQuery(q Query, d QueryDefaults) Query {
	limit := d.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	out := Query{
		Keyword: q.Keyword,
		Limit:   q.Limit,
		Offset:  q.Offset,
	}
	if out.Limit == 0 {
		out.Limit = limit
	}

	if len(d.Filters) > 0 || len(q.Filters) > 0 {
		out.Filters = make(map[string]any, len(d.Filters)+len(q.Filters))
		for k, v := range d.Filters {
			out.Filters[k] = v
		}
		for k, v := range q.Filters {
			out.Filters[k] = v
		}
	}
	return out
}

// ValidateQuery rejects queries the upstream would refuse. maxLimit <= 0
// disables the upper bound.
func ValidateQuery(q Query, maxLimit int) error {
	if q.Limit <= 0 {
		return apperror.Validation("limit must be positive, got %d", q.Limit)
	}
	if maxLimit > 0 && q.Limit > maxLimit {
		return apperror.Validation("limit must not exceed %d, got %d", maxLimit, q.Limit)
	}
	if q.Offset < 0 {
		return apperror.Validation("offset must not be negative, got %d", q.Offset)
	}
	for k := range q.Filters {
		if strings.TrimSpace(k) == "" {
			return apperror.Validation("filter name must not be empty")
		}
	}
	return nil
}

// Fingerprint is a canonical encoding of q, independent of filter order.
func Fingerprint(q Query) string {
	return Values(q).Encode()
}

// Values renders q as upstream query parameters. Slice filters become
// repeated parameters.
func Values(q Query) url.Values {
	v := url.Values{}
	v.Set("keyword", q.Keyword)
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("offset", strconv.Itoa(q.Offset))

	keys := make([]string, 0, len(q.Filters))
	for k := range q.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch val := q.Filters[k].(type) {
		case nil:
		case []string:
			for _, s := range val {
				v.Add(k, s)
			}
		case []any:
			for _, s := range val {
				v.Add(k, fmt.Sprint(s))
			}
		default:
			v.Set(k, fmt.Sprint(val))
		}
	}
	return v
}
