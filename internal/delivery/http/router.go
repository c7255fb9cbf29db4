package http

import (
	"net/http"

	"donationrecords/internal/delivery/http/controllers"
	"donationrecords/internal/delivery/http/middleware"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterConfig carries the collaborators NewRouter wires into the mux.
type RouterConfig struct {
	Donations *controllers.DonationController
	Health    *controllers.HealthController
	// Observer receives per-route request metrics. Optional.
	Observer middleware.RequestObserver
	// MetricsHandler is mounted on GET /metrics when set.
	MetricsHandler http.Handler
	// RequireAdmin guards destructive routes. Nil leaves them open.
	RequireAdmin func(http.HandlerFunc) http.HandlerFunc
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()
	handle := func(pattern string, h http.HandlerFunc) {
		if cfg.Observer != nil {
			mux.Handle(pattern, middleware.Instrument(cfg.Observer, pattern, h))
			return
		}
		mux.Handle(pattern, h)
	}
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		if cfg.RequireAdmin == nil {
			return h
		}
		return cfg.RequireAdmin(h)
	}

	// Donations
	d := cfg.Donations
	handle("POST /api/donations", d.CreateDonation)
	handle("GET /api/donations", d.ListDonations)
	handle("GET /api/donations/{id}", d.GetDonation)
	handle("GET /api/donations/cpf/{cpf}", d.ListByCPF)
	handle("GET /api/donations/name/{name}", d.ListByName)
	handle("GET /api/donations/total/cpf/{cpf}", d.SumByCPF)
	handle("GET /api/donations/min-amount/{amount}", d.ListByMinAmount)
	handle("GET /api/donations/period", d.ListByPeriod)
	handle("DELETE /api/donations/{id}", admin(d.DeleteDonation))

	// Operations
	if cfg.Health != nil {
		handle("GET /healthz", cfg.Health.Health)
	}
	if cfg.MetricsHandler != nil {
		mux.Handle("GET /metrics", cfg.MetricsHandler)
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
