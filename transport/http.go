package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	dashboardapp "github.com/muhammadheryan/promo-admin/application/dashboard"
	feedapp "github.com/muhammadheryan/promo-admin/application/feed"
	productapp "github.com/muhammadheryan/promo-admin/application/product"
	ruleapp "github.com/muhammadheryan/promo-admin/application/rule"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	ProductApp   productapp.ProductApp
	RuleApp      ruleapp.RuleApp
	DashboardApp dashboardapp.DashboardApp
	FeedApp      feedapp.FeedApp
}

func NewTransport(ProductApp productapp.ProductApp, RuleApp ruleapp.RuleApp, DashboardApp dashboardapp.DashboardApp, FeedApp feedapp.FeedApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		ProductApp:   ProductApp,
		RuleApp:      RuleApp,
		DashboardApp: DashboardApp,
		FeedApp:      FeedApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// products
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/products/view", rh.GetListView).Methods(http.MethodGet)
	mux.HandleFunc("/products/view", rh.UpdateListView).Methods(http.MethodPost)
	mux.HandleFunc("/products/drafts", rh.ListDrafts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id:[0-9]+}/rules", rh.ListRules).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id:[0-9]+}/rules", rh.CreateRule).Methods(http.MethodPost)

	// dashboard and navigation
	mux.HandleFunc("/dashboard", rh.Dashboard).Methods(http.MethodGet)
	mux.HandleFunc("/menu", rh.Menu).Methods(http.MethodGet)
	mux.HandleFunc("/settings", rh.Settings).Methods(http.MethodGet)

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/rules/{id:[0-9]+}/expire", rh.ExpireRule).Methods(http.MethodPost)
	internal.HandleFunc("/feed/refresh", rh.RefreshFeed).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(SessionMiddleware())

	return mux
}
