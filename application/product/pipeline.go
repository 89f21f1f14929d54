package product

import (
	"strings"

	"github.com/muhammadheryan/promo-admin/constant"
	"github.com/muhammadheryan/promo-admin/model"
	"github.com/muhammadheryan/promo-admin/utils/errors"
)

// Filter keeps the products whose title contains the search query
// (case-insensitive) and whose derived status equals the status filter.
// Empty filter fields match everything. Input order is preserved.
func Filter(products []model.Product, filter model.FilterState) []model.Product {
	query := strings.ToLower(filter.SearchQuery)

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		if filter.StatusFilter != constant.ProductStatusAll && p.Status() != filter.StatusFilter {
			continue
		}
		out = append(out, p)
	}
	return out
}

// pageBounds returns the [start, end) window of a page clipped to total.
// A page past the end returns (total, total). The page number is compared
// by division first so very large pages cannot overflow the multiplication.
func pageBounds(page model.PageState, total int) (int, int) {
	if page.ItemsPerPage <= 0 || page.CurrentPage < 1 {
		return total, total
	}
	if page.CurrentPage-1 > total/page.ItemsPerPage {
		return total, total
	}

	start := (page.CurrentPage - 1) * page.ItemsPerPage
	if start >= total {
		return total, total
	}
	end := total
	if total-start > page.ItemsPerPage {
		end = start + page.ItemsPerPage
	}
	return start, end
}

// Paginate returns the page slice of filtered and the total count. A start
// past the end of the list yields an empty slice.
func Paginate(filtered []model.Product, page model.PageState) ([]model.Product, int) {
	total := len(filtered)
	start, end := pageBounds(page, total)
	if start >= total {
		return []model.Product{}, total
	}
	return filtered[start:end:end], total
}

// ListState is the filter and page state of one product list view. All
// transitions go through its methods.
type ListState struct {
	Filter model.FilterState `json:"filter"`
	Page   model.PageState   `json:"page"`
}

// NewListState starts on page 1 with the default page size and no filter.
func NewListState() ListState {
	return ListState{
		Page: model.PageState{
			CurrentPage:  1,
			ItemsPerPage: constant.DefaultPageSize,
		},
	}
}

// ApplyFilter replaces the filter and moves back to page 1.
func (s *ListState) ApplyFilter(filter model.FilterState) error {
	if !filter.StatusFilter.Valid() {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	s.Filter = filter
	s.Page.CurrentPage = 1
	return nil
}

// SetSearchQuery replaces the title query and moves back to page 1.
func (s *ListState) SetSearchQuery(query string) error {
	f := s.Filter
	f.SearchQuery = query
	return s.ApplyFilter(f)
}

// SetStatusFilter replaces the status filter and moves back to page 1.
// Unknown statuses are rejected.
func (s *ListState) SetStatusFilter(status constant.ProductStatus) error {
	f := s.Filter
	f.StatusFilter = status
	return s.ApplyFilter(f)
}

// HasNext reports whether a page follows the current one.
func (s ListState) HasNext(totalCount int) bool {
	_, end := pageBounds(s.Page, totalCount)
	return end < totalCount
}

func (s ListState) HasPrevious() bool {
	return s.Page.CurrentPage > 1
}

// NextPage advances one page when HasNext allows it.
func (s *ListState) NextPage(totalCount int) bool {
	if !s.HasNext(totalCount) {
		return false
	}
	s.Page.CurrentPage++
	return true
}

// PreviousPage steps back one page unless already on page 1.
func (s *ListState) PreviousPage() bool {
	if !s.HasPrevious() {
		return false
	}
	s.Page.CurrentPage--
	return true
}

// SetPageSize changes the items per page. The current page is kept and may
// end up past the last page, which renders as an empty slice.
func (s *ListState) SetPageSize(size int) error {
	if !constant.IsPageSize(size) {
		return errors.SetCustomError(constant.ErrInvalidPageSize)
	}
	s.Page.ItemsPerPage = size
	return nil
}

// SetCurrentPage jumps to any page >= 1. Pages past the end render empty.
func (s *ListState) SetCurrentPage(page int) error {
	if page < 1 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	s.Page.CurrentPage = page
	return nil
}

// Reset drops the filter and returns to page 1 with the default page size.
func (s *ListState) Reset() {
	*s = NewListState()
}

// View runs the pipeline over products.
func (s ListState) View(products []model.Product) *model.ListView {
	filtered := Filter(products, s.Filter)
	items, total := Paginate(filtered, s.Page)

	view := &model.ListView{
		Items:        items,
		TotalCount:   total,
		CurrentPage:  s.Page.CurrentPage,
		ItemsPerPage: s.Page.ItemsPerPage,
		HasNext:      s.HasNext(total),
		HasPrevious:  s.HasPrevious(),
		Filter:       s.Filter,
	}
	if len(items) > 0 {
		start, _ := pageBounds(s.Page, total)
		view.RangeStart = start + 1
		view.RangeEnd = start + len(items)
	}
	return view
}
