package constant

type contextKey string

const (
	SessionIDKey contextKey = "session_id"

	SessionIDHeader = "X-Session-ID"
)
