package domain

// PageInfo describes the page of records currently shown.
type PageInfo struct {
	Total       int
	CurrentPage int
	PerPage     int
	TotalPages  int
	From        int
	To          int
	HasMore     bool
	NextPage    *int
	PrevPage    *int
}

// NewPageInfo derives the pagination envelope from the record total and the requested page.
// The current page is clamped into [1, totalPages]; an empty result set yields a single
// empty page with a zero range.
func NewPageInfo(total, page, perPage int) PageInfo {
	if total < 0 {
		total = 0
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	info := PageInfo{
		Total:       total,
		CurrentPage: page,
		PerPage:     perPage,
		TotalPages:  totalPages,
	}
	if total > 0 {
		info.From = (page-1)*perPage + 1
		info.To = min(page*perPage, total)
	}
	if page < totalPages {
		next := page + 1
		info.NextPage = &next
		info.HasMore = true
	}
	if page > 1 {
		prev := page - 1
		info.PrevPage = &prev
	}
	return info
}

// SinglePage synthesizes the envelope for sources that cannot paginate:
// every record is on page one and there is never a next page.
func SinglePage(count, perPage int) PageInfo {
	if count < 0 {
		count = 0
	}
	if perPage < count {
		perPage = count
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return NewPageInfo(count, 1, perPage)
}

// Contains reports whether n addresses an existing page.
func (p PageInfo) Contains(n int) bool {
	return n >= 1 && n <= p.TotalPages
}
