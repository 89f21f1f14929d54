package transport

import (
	"net/http"
)

// Dashboard handler
// @Summary Dashboard series
// @Description Subscription and revenue series restricted to an inclusive date range
// @Tags Dashboard
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} model.DashboardResponse
// @Failure 400 {object} Response
// @Router /dashboard [get]
func (s *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	res, err := s.DashboardApp.Series(ctx, q.Get("start"), q.Get("end"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Menu handler
// @Summary Navigation menu
// @Tags Dashboard
// @Produce json
// @Success 200 {array} model.MenuItem
// @Router /menu [get]
func (s *RestHandler) Menu(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.DashboardApp.Menu(r.Context()))
}

// Settings handler
// @Summary Settings
// @Tags Dashboard
// @Produce json
// @Success 200 {object} model.SettingsResponse
// @Router /settings [get]
func (s *RestHandler) Settings(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.DashboardApp.Settings(r.Context()))
}

// RefreshFeed handler
// @Summary Refresh product feed
// @Description Drop the cached feed and load it again from upstream
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /internal/v1/feed/refresh [post]
func (s *RestHandler) RefreshFeed(w http.ResponseWriter, r *http.Request) {
	if err := s.FeedApp.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	snapshot := s.FeedApp.Snapshot()
	writeSuccess(w, struct {
		Status   string `json:"status"`
		Products int    `json:"products"`
	}{
		Status:   string(snapshot.Status),
		Products: len(snapshot.Products),
	})
}
