package http

import (
	"encoding/json"
	"net/url"
	"strings"
	"unicode/utf8"

	"erp-lookup/internal/lookup"
	"erp-lookup/internal/model"
	"erp-lookup/pkg/apperror"
	"erp-lookup/pkg/response"
)

// --- Request DTOs ---

type optionsReq struct {
	Entity  string `uri:"entity"   binding:"required"`
	Keyword string `form:"keyword"`
	Limit   int    `form:"limit"`
	Offset  int    `form:"offset"`
	// Filters is a JSON object, e.g. {"warehouseId":"w1","isActive":true}.
	// Plain query parameters such as ?warehouseId=w1 are filters too and
	// take precedence.
	Filters string `form:"filters"`

	filters map[string]any
}

// reservedParams are the query keys that are not filters.
var reservedParams = map[string]bool{
	"keyword": true,
	"limit":   true,
	"offset":  true,
	"filters": true,
}

func (r *optionsReq) validate(params url.Values) error {
	if strings.TrimSpace(r.Filters) != "" {
		if err := json.Unmarshal([]byte(r.Filters), &r.filters); err != nil {
			return apperror.Validation("filters must be a JSON object")
		}
	}

	for key, values := range params {
		if reservedParams[key] || len(values) == 0 {
			continue
		}
		if r.filters == nil {
			r.filters = make(map[string]any, len(params))
		}
		if len(values) == 1 {
			r.filters[key] = values[0]
		} else {
			r.filters[key] = append([]string(nil), values...)
		}
	}
	return nil
}

func (r optionsReq) toQuery() lookup.Query {
	return lookup.Query{
		Keyword: r.Keyword,
		Limit:   r.Limit,
		Offset:  r.Offset,
		Filters: r.filters,
	}
}

// ---

const maxKeywordLength = 200

type searchReq struct {
	Keyword string `json:"keyword"`
}

func (r searchReq) validate() error {
	if n := utf8.RuneCountInString(r.Keyword); n > maxKeywordLength {
		return apperror.Validation("keyword must not exceed %d characters, got %d", maxKeywordLength, n)
	}
	return nil
}

// --- Response DTOs ---

type metaResp struct {
	HasMore bool `json:"hasMore"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
}

type viewResp struct {
	Entity    string             `json:"entity"`
	Data      []model.LookupItem `json:"data"`
	Loading   bool               `json:"loading"`
	Error     *string            `json:"error"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
	HasMore   bool               `json:"hasMore"`
	Status    string             `json:"status"`
	Meta      metaResp           `json:"meta"`
	UpdatedAt response.DateTime  `json:"updatedAt"`
}

func (h *handler) newViewResp(v lookup.View) viewResp {
	resp := viewResp{
		Entity:  v.Entity,
		Data:    v.Cache.Data,
		Loading: v.Cache.Loading,
		Limit:   v.Cache.Limit,
		Offset:  v.Cache.Offset,
		HasMore: v.Cache.HasMore,
		Status:  string(v.Cache.Status),
		Meta: metaResp{
			HasMore: v.Meta.HasMore,
			Limit:   v.Meta.Limit,
			Offset:  v.Meta.Offset,
		},
		UpdatedAt: response.DateTime(v.Cache.UpdatedAt),
	}
	if resp.Data == nil {
		resp.Data = []model.LookupItem{}
	}
	if v.Cache.Error != "" {
		msg := v.Cache.Error
		resp.Error = &msg
	}
	return resp
}

// ---

type entityResp struct {
	Name         string `json:"name"`
	Collection   string `json:"collection"`
	DefaultLimit int    `json:"defaultLimit"`
	MaxLimit     int    `json:"maxLimit,omitempty"`
	MaxItems     int    `json:"maxItems"`
	Permission   string `json:"permission,omitempty"`
}

type listEntitiesResp struct {
	Entities []entityResp `json:"entities"`
}

func (h *handler) newListEntitiesResp(entities []lookup.EntityConfig) listEntitiesResp {
	out := listEntitiesResp{Entities: make([]entityResp, 0, len(entities))}
	for _, e := range entities {
		out.Entities = append(out.Entities, entityResp{
			Name:         e.Name,
			Collection:   e.Collection,
			DefaultLimit: e.DefaultLimit,
			MaxLimit:     e.MaxLimit,
			MaxItems:     e.MaxItems,
			Permission:   e.Permission,
		})
	}
	return out
}
