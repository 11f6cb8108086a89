package model

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// ListParams are the query parameters of the operator listing.
type ListParams struct {
	Page  int
	Limit int
	Query string
}

// Values encodes the params. Page and limit below 1 fall back to their
// defaults; q is only set when Query is non-empty.
func (p ListParams) Values() url.Values {
	page, limit := p.Page, p.Limit
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("limit", strconv.Itoa(limit))
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	return v
}

// Encode renders the params as a query string in page, limit, q order.
func (p ListParams) Encode() string {
	v := p.Values()
	var b strings.Builder
	for _, key := range []string{"page", "limit", "q"} {
		if !v.Has(key) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v.Get(key)))
	}
	return b.String()
}
