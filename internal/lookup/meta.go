package lookup

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"

	"erp-lookup/pkg/log"
)

// PaginationSource is implemented by values that expose pagination fields.
type PaginationSource interface {
	Pagination() (hasMore bool, limit, offset int)
}

// MetaView derives Meta from caches and decoded payloads. It remembers only
// the last pointer it was given, so repeated reads of the same snapshot are
// free while a new snapshot is always recomputed.
type MetaView struct {
	l log.Logger

	mu      sync.Mutex
	lastSrc any
	last    Meta
}

// NewMetaView creates a MetaView. A nil logger silences shape warnings.
func NewMetaView(l log.Logger) *MetaView {
	return &MetaView{l: l}
}

// Of returns the pagination metadata of src. Any missing or malformed field
// falls back to hasMore=false, limit=0, offset=0.
func (v *MetaView) Of(ctx context.Context, src any) Meta {
	memo := isPointer(src)
	if memo {
		v.mu.Lock()
		if v.lastSrc == src {
			m := v.last
			v.mu.Unlock()
			return m
		}
		v.mu.Unlock()
	}

	m, ok := deriveMeta(src)
	if !ok {
		v.warn(ctx, src)
	}

	if memo {
		v.mu.Lock()
		v.lastSrc = src
		v.last = m
		v.mu.Unlock()
	}
	return m
}

func (v *MetaView) warn(ctx context.Context, src any) {
	if v.l == nil {
		return
	}
	v.l.Warnf(ctx, "internal.lookup.MetaView: unexpected pagination shape %T, using defaults where missing", src)
}

func deriveMeta(src any) (m Meta, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			m, ok = Meta{}, false
		}
	}()

	switch s := src.(type) {
	case nil:
		return Meta{}, false
	case PaginationSource:
		hasMore, limit, offset := s.Pagination()
		m = Meta{HasMore: hasMore, Limit: limit, Offset: offset}
		ok = true
		if m.Limit < 0 {
			m.Limit, ok = 0, false
		}
		if m.Offset < 0 {
			m.Offset, ok = 0, false
		}
		return m, ok
	case map[string]any:
		return metaFromMap(s)
	default:
		return Meta{}, false
	}
}

func metaFromMap(src map[string]any) (Meta, bool) {
	ok := true
	m := Meta{}

	if hm, valid := src["hasMore"].(bool); valid {
		m.HasMore = hm
	} else {
		ok = false
	}

	if n, valid := nonNegativeInt(src["limit"]); valid {
		m.Limit = n
	} else {
		ok = false
	}

	if n, valid := nonNegativeInt(src["offset"]); valid {
		m.Offset = n
	} else {
		ok = false
	}

	return m, ok
}

func nonNegativeInt(v any) (int, bool) {
	var n int
	switch val := v.(type) {
	case int:
		n = val
	case int64:
		n = int(val)
	case float64:
		if val != float64(int(val)) {
			return 0, false
		}
		n = int(val)
	case json.Number:
		i, err := val.Int64()
		if err != nil {
			return 0, false
		}
		n = int(i)
	default:
		return 0, false
	}
	if n < 0 {
		return 0, false
	}
	return n, true
}

func isPointer(src any) bool {
	if src == nil {
		return false
	}
	rv := reflect.ValueOf(src)
	return rv.Kind() == reflect.Pointer && !rv.IsNil()
}
