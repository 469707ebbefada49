package repository

import "erp-lookup/internal/lookup"

// FetchPageOptions holds the entity and the normalized query of one fetch.
type FetchPageOptions struct {
	Entity lookup.EntityConfig
	Query  lookup.Query
}
