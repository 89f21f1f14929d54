package constant

// ProductStatus is derived from the rule count of a product, never stored.
type ProductStatus string

const (
	ProductStatusAll    ProductStatus = ""
	ProductStatusActive ProductStatus = "Active"
	ProductStatusNoRule ProductStatus = "No rule"
)

// Valid reports whether s is one of the selectable status filter options.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusAll, ProductStatusActive, ProductStatusNoRule:
		return true
	}
	return false
}

// PageSizes are the selectable items-per-page options.
var PageSizes = []int{5, 10, 20, 50}

const (
	DefaultPageSize = 5

	// LastUpdateLayout is the display layout of Product.LastUpdate.
	LastUpdateLayout = "02-01-2006 15:04:05"

	PlaceholderImage = "https://via.placeholder.com/50"
)

// IsPageSize reports whether n is one of PageSizes.
func IsPageSize(n int) bool {
	for _, size := range PageSizes {
		if size == n {
			return true
		}
	}
	return false
}

var AllowedImageTypes = []string{"image/gif", "image/jpeg", "image/png"}

type FeedStatus string

const (
	FeedStatusLoading     FeedStatus = "loading"
	FeedStatusOK          FeedStatus = "ok"
	FeedStatusUnavailable FeedStatus = "unavailable"
)
