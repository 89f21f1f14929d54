package product

import (
	"strconv"

	"github.com/muhammadheryan/promo-admin/constant"
	"github.com/muhammadheryan/promo-admin/model"
	"github.com/muhammadheryan/promo-admin/utils/errors"
)

const (
	ActionSearch   = "search"
	ActionStatus   = "status"
	ActionNext     = "next"
	ActionPrevious = "previous"
	ActionPage     = "page"
	ActionPageSize = "page_size"
	ActionReset    = "reset"
)

// applyAction maps a presentation event onto a ListState transition.
// Guarded moves (next on the last page, previous on the first) are no-ops.
func applyAction(state *ListState, action *model.ListAction, products []model.Product) error {
	switch action.Action {
	case ActionSearch:
		return state.SetSearchQuery(action.Value)
	case ActionStatus:
		return state.SetStatusFilter(constant.ProductStatus(action.Value))
	case ActionNext:
		total := len(Filter(products, state.Filter))
		state.NextPage(total)
		return nil
	case ActionPrevious:
		state.PreviousPage()
		return nil
	case ActionPage:
		n, err := strconv.Atoi(action.Value)
		if err != nil {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		return state.SetCurrentPage(n)
	case ActionPageSize:
		n, err := strconv.Atoi(action.Value)
		if err != nil {
			return errors.SetCustomError(constant.ErrInvalidPageSize)
		}
		return state.SetPageSize(n)
	case ActionReset:
		state.Reset()
		return nil
	}
	return errors.SetCustomError(constant.ErrInvalidRequest)
}
