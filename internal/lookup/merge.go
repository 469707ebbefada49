package lookup

// DefaultMaxItems bounds the retained items of an entity cache.
const DefaultMaxItems = 500

// Merge combines page into existing. An offset-0 or unpaginated page
// replaces existing, any other page is appended. Items are deduplicated by
// id: the last version wins and keeps the position first seen. With
// maxItems > 0 only the most recent maxItems entries are kept.
//
// Merge never mutates existing.
func Merge[T Identifiable](existing []T, page Page[T], maxItems int) []T {
	var base []T
	if page.Paginated && page.Offset > 0 {
		base = existing
	}

	combined := make([]T, 0, len(base)+len(page.Items))
	combined = append(combined, base...)
	combined = append(combined, page.Items...)

	result := Dedupe(combined)
	if maxItems > 0 && len(result) > maxItems {
		trimmed := make([]T, maxItems)
		copy(trimmed, result[len(result)-maxItems:])
		result = trimmed
	}
	return result
}

// Dedupe removes repeated ids, keeping the last data at the first position.
func Dedupe[T Identifiable](items []T) []T {
	out := make([]T, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		id := item.LookupID()
		if pos, ok := index[id]; ok {
			out[pos] = item
			continue
		}
		index[id] = len(out)
		out = append(out, item)
	}
	return out
}
