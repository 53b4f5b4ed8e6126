// Package pagination provides the length-aware paginator the bridge
// activates with SetupPagination, mirroring Laravel's
// Illuminate\Pagination\LengthAwarePaginator.
package pagination

import "strconv"

// DefaultPerPage matches the framework's per-page default.
const DefaultPerPage = 15

// CurrentPageResolver produces the page number for new paginators — usually
// from the captured request's "page" input, or 1 in console contexts.
type CurrentPageResolver func() int

// Paginator is a length-aware page over a result set.
type Paginator struct {
	items       []any
	total       int
	perPage     int
	currentPage int
}

// New creates a paginator. perPage defaults to DefaultPerPage and
// currentPage clamps to at least 1.
func New(items []any, total, perPage, currentPage int) *Paginator {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if currentPage < 1 {
		currentPage = 1
	}
	return &Paginator{
		items:       items,
		total:       total,
		perPage:     perPage,
		currentPage: currentPage,
	}
}

// Items returns the current page's items.
func (p *Paginator) Items() []any { return p.items }

// Total returns the total number of items across all pages.
func (p *Paginator) Total() int { return p.total }

// PerPage returns the page size.
func (p *Paginator) PerPage() int { return p.perPage }

// CurrentPage returns the current page number (1-based).
func (p *Paginator) CurrentPage() int { return p.currentPage }

// LastPage returns the number of the final page (at least 1).
func (p *Paginator) LastPage() int {
	if p.total <= 0 {
		return 1
	}
	last := (p.total + p.perPage - 1) / p.perPage
	if last < 1 {
		last = 1
	}
	return last
}

// HasMorePages reports whether pages exist after the current one.
func (p *Paginator) HasMorePages() bool {
	return p.currentPage < p.LastPage()
}

// OnFirstPage reports whether the paginator is on page 1.
func (p *Paginator) OnFirstPage() bool { return p.currentPage <= 1 }

// IsEmpty reports whether the current page holds no items.
func (p *Paginator) IsEmpty() bool { return len(p.items) == 0 }

// NextPage returns the following page number, or 0 when on the last page.
func (p *Paginator) NextPage() int {
	if !p.HasMorePages() {
		return 0
	}
	return p.currentPage + 1
}

// PreviousPage returns the preceding page number, or 0 when on page 1.
func (p *Paginator) PreviousPage() int {
	if p.OnFirstPage() {
		return 0
	}
	return p.currentPage - 1
}

// ── Page resolution ───────────────────────────────────────────────────────────

// ResolvePage parses a raw page input the way the framework does: empty,
// non-numeric or sub-1 values resolve to page 1.
func ResolvePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
