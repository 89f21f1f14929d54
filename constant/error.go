package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidPageSize
	ErrInvalidDateRange
	ErrInvalidImageType
	ErrRuleNotActive
	ErrFeedUnavailable
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:          "success",
	ErrInternal:         "error internal",
	ErrNotFound:         "data not found",
	ErrInvalidRequest:   "invalid request",
	ErrUnauthorize:      "unauthorize request",
	ErrInvalidPageSize:  "page size not allowed",
	ErrInvalidDateRange: "end date must be after start date",
	ErrInvalidImageType: "unsupported file type, only jpeg, png, gif are allowed",
	ErrRuleNotActive:    "rule is not active",
	ErrFeedUnavailable:  "product feed unavailable",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:          http.StatusOK,
	ErrInternal:         http.StatusInternalServerError,
	ErrNotFound:         http.StatusNotFound,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrUnauthorize:      http.StatusUnauthorized,
	ErrInvalidPageSize:  http.StatusBadRequest,
	ErrInvalidDateRange: http.StatusBadRequest,
	ErrInvalidImageType: http.StatusBadRequest,
	ErrRuleNotActive:    http.StatusConflict,
	ErrFeedUnavailable:  http.StatusServiceUnavailable,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:          "0000",
	ErrInternal:         "0001",
	ErrNotFound:         "0002",
	ErrInvalidRequest:   "0003",
	ErrUnauthorize:      "0004",
	ErrInvalidPageSize:  "0005",
	ErrInvalidDateRange: "0006",
	ErrInvalidImageType: "0007",
	ErrRuleNotActive:    "0008",
	ErrFeedUnavailable:  "0009",
}
