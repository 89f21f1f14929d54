package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/promo-admin/constant"
	"github.com/muhammadheryan/promo-admin/model"
	"github.com/muhammadheryan/promo-admin/utils/errors"
)

type DashboardApp interface {
	Series(ctx context.Context, startDate, endDate string) (*model.DashboardResponse, error)
	Menu(ctx context.Context) []model.MenuItem
	Settings(ctx context.Context) *model.SettingsResponse
}

type point struct {
	day   time.Time
	value float64
}

type dashboardAppImpl struct {
	subscription []point
	revenue      []point
	defaultStart time.Time
	defaultEnd   time.Time
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewDashboardApp serves the fixed demo series shown on the dashboard.
func NewDashboardApp() DashboardApp {
	subscription := []float64{50, 100, 80, 20, 0, 30, 70}
	revenue := []float64{500, 650, 300, 400, 500, 600, 700}

	s := &dashboardAppImpl{
		defaultStart: day(2024, time.October, 1),
		defaultEnd:   day(2024, time.October, 7),
	}
	for i := range subscription {
		d := day(2024, time.October, i+1)
		s.subscription = append(s.subscription, point{day: d, value: subscription[i]})
		s.revenue = append(s.revenue, point{day: d, value: revenue[i]})
	}
	return s
}

// Series returns both chart series restricted to [startDate, endDate]
// (inclusive, YYYY-MM-DD). Empty bounds fall back to the default range.
func (s *dashboardAppImpl) Series(ctx context.Context, startDate, endDate string) (*model.DashboardResponse, error) {
	start, err := parseOr(startDate, s.defaultStart)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	end, err := parseOr(endDate, s.defaultEnd)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if end.Before(start) {
		return nil, errors.SetCustomError(constant.ErrInvalidDateRange)
	}

	return &model.DashboardResponse{
		StartDate:    start.Format(constant.RuleDateLayout),
		EndDate:      end.Format(constant.RuleDateLayout),
		Subscription: filterSeries("Subscription", s.subscription, start, end),
		Revenue:      filterSeries("Revenue", s.revenue, start, end),
	}, nil
}

func (s *dashboardAppImpl) Menu(ctx context.Context) []model.MenuItem {
	return []model.MenuItem{
		{ID: 1, Title: "Dashboard", Path: "/dashboard", Icon: "home"},
		{ID: 2, Title: "Products", Path: "/products", Icon: "order"},
		{ID: 3, Title: "Settings", Path: "/settings", Icon: "settings"},
	}
}

func (s *dashboardAppImpl) Settings(ctx context.Context) *model.SettingsResponse {
	return &model.SettingsResponse{Sections: []string{}}
}

func parseOr(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	return time.Parse(constant.RuleDateLayout, value)
}

func filterSeries(name string, points []point, start, end time.Time) model.Series {
	out := model.Series{Name: name, Points: make([]model.SeriesPoint, 0, len(points))}
	for _, p := range points {
		if p.day.Before(start) || p.day.After(end) {
			continue
		}
		out.Points = append(out.Points, model.SeriesPoint{Label: label(p.day), Value: p.value})
		out.Total += p.value
	}
	return out
}

// label renders d/m/yyyy without zero padding.
func label(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}
