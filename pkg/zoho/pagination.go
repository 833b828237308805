package zoho

import "strconv"

const (
	defaultLimit = 20
	maxPerPage   = 200
)

// PageParams selects a window of a listing. Offset is converted to a page
// number, so it should be a multiple of Limit. When Offset is zero a Cursor
// returned by a previous page (with the same Limit) selects that page.
type PageParams struct {
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

// SearchParams extends PageParams with a free-text query and exact-match
// filters.
type SearchParams struct {
	PageParams
	Query   string   `json:"query,omitempty"`
	Filters []Filter `json:"filters,omitempty"`
}

// Filter is an exact-match filter on a canonical field name.
type Filter struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Page is one page of a listing.
type Page[T any] struct {
	Items      []T    `json:"items"`
	Count      int    `json:"count"`
	Total      int    `json:"total"`
	HasMore    bool   `json:"hasMore"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// pageInfo is the vendor pagination block.
type pageInfo struct {
	Page        int  `json:"page"`
	PerPage     int  `json:"per_page"`
	Count       int  `json:"count"`
	MoreRecords bool `json:"more_records"`
}

type pageWindow struct {
	page    int
	perPage int
}

func (p PageParams) window() pageWindow {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}

	page := offset/limit + 1
	if offset == 0 && p.Cursor != "" {
		if n, err := strconv.Atoi(p.Cursor); err == nil && n > 0 {
			page = n
		}
	}

	perPage := limit
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return pageWindow{page: page, perPage: perPage}
}

func (w pageWindow) query() map[string]string {
	return map[string]string{
		"page":     strconv.Itoa(w.page),
		"per_page": strconv.Itoa(w.perPage),
	}
}

func newPage[T any](items []T, info *pageInfo, w pageWindow) *Page[T] {
	if items == nil {
		items = []T{}
	}
	p := &Page[T]{Items: items, Count: len(items)}
	if info != nil {
		p.Total = info.Count
		p.HasMore = info.MoreRecords
	}
	if p.HasMore {
		p.NextCursor = strconv.Itoa(w.page + 1)
	}
	return p
}
