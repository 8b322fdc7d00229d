package domain

// WindowItem is one entry of the clickable page sequence: either a page number or an ellipsis.
type WindowItem struct {
	Page     int
	Current  bool
	Ellipsis bool
}

// PageWindow renders the page sequence for a pager.
// Pages 1 and totalPages are always present, as is every page within one of current;
// each other run of pages collapses into a single ellipsis.
func PageWindow(totalPages, current int) []WindowItem {
	if totalPages < 1 {
		totalPages = 1
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}
	items := make([]WindowItem, 0, 7)
	for page := 1; page <= totalPages; page++ {
		if page == 1 || page == totalPages || abs(page-current) <= 1 {
			items = append(items, WindowItem{Page: page, Current: page == current})
			continue
		}
		if n := len(items); n > 0 && items[n-1].Ellipsis {
			continue
		}
		items = append(items, WindowItem{Ellipsis: true})
	}
	return items
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
