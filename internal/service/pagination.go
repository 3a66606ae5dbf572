// Package service implements the query core of the social data API:
// pagination normalization, per-entity resolvers over the document store,
// and on-demand resolution of declared relationships between entity types.
package service

import (
	"github.com/opensocial/social-data-service/internal/storage"
)

// Client-facing paging defaults.
const (
	defaultPage  = 1
	defaultLimit = 10
)

// PageParams are the client-facing paging arguments: a 1-based page
// number, a page size, and an optional sort field. Nil means absent.
type PageParams struct {
	Page   *int
	Limit  *int
	SortBy string
}

// Normalize converts client paging parameters into a storage page request
// and returns the 1-based page number to echo back in the envelope.
//
// Absent page defaults to 1 and values below 1 are clamped to 1 before the
// 0-based conversion, so the offset is never negative. Absent or
// non-positive limit defaults to 10; no upper bound is enforced here.
// An absent sort field falls back to the entity's default; whether the
// field exists is not checked; an invalid sort field is a storage error,
// propagated unchanged.
func Normalize(p PageParams, defaultSort string) (storage.PageRequest, int) {
	page := defaultPage
	if p.Page != nil {
		page = *p.Page
	}
	if page < 1 {
		page = 1
	}

	limit := defaultLimit
	if p.Limit != nil && *p.Limit > 0 {
		limit = *p.Limit
	}

	sort := p.SortBy
	if sort == "" {
		sort = defaultSort
	}

	return storage.PageRequest{
		Offset: page - 1,
		Size:   limit,
		Sort:   sort,
	}, page
}
