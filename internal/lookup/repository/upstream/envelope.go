package upstream

import (
	"encoding/json"
	"fmt"
	"net/http"

	"erp-lookup/internal/lookup"
	"erp-lookup/internal/lookup/repository"
)

// envelope is the upstream success body. Either Items (paginated) or Data
// (flat) carries the records.
type envelope[T any] struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Items   []T    `json:"items"`
	Data    []T    `json:"data"`
	Limit   *int   `json:"limit"`
	Offset  *int   `json:"offset"`
	HasMore *bool  `json:"hasMore"`
}

// decodePage turns a success body into a page. Offset and limit missing
// from a paginated envelope are taken from the query that produced it.
func decodePage[T any](body []byte, q lookup.Query) (lookup.Page[T], error) {
	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return lookup.Page[T]{}, fmt.Errorf("%w: %v", repository.ErrMalformedEnvelope, err)
	}

	if env.Success != nil && !*env.Success {
		msg := env.Message
		if msg == "" {
			msg = "upstream reported failure"
		}
		return lookup.Page[T]{}, &ResponseError{
			Status:  http.StatusBadGateway,
			Message: msg,
			Body:    body,
		}
	}

	items := env.Items
	if items == nil {
		items = env.Data
	}
	if items == nil {
		items = []T{}
	}

	page := lookup.Page[T]{
		Items:     items,
		Limit:     q.Limit,
		Offset:    q.Offset,
		Paginated: env.HasMore != nil || env.Limit != nil || env.Offset != nil,
	}
	if env.Limit != nil {
		page.Limit = *env.Limit
	}
	if env.Offset != nil {
		page.Offset = *env.Offset
	}
	if env.HasMore != nil {
		page.HasMore = *env.HasMore
	}
	return page, nil
}
