package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appcontrollers "github.com/paylinkbr/paylink-core/api/controllers/app"
	authcontrollers "github.com/paylinkbr/paylink-core/api/controllers/auth"
	"github.com/paylinkbr/paylink-core/api/middleware"
	"github.com/paylinkbr/paylink-core/api/responses"
	"github.com/paylinkbr/paylink-core/internal/backend"
	"github.com/paylinkbr/paylink-core/internal/fees"
	"github.com/paylinkbr/paylink-core/internal/gateway"
	"github.com/paylinkbr/paylink-core/internal/history"
	"github.com/paylinkbr/paylink-core/internal/panel"
	"github.com/paylinkbr/paylink-core/internal/session"
	"github.com/paylinkbr/paylink-core/pkg/config"
	"github.com/paylinkbr/paylink-core/pkg/logger"
	"github.com/paylinkbr/paylink-core/pkg/metrics"
)

// Services groups everything the router mounts.
type Services struct {
	Sessions *session.Store
	Auth     gateway.Service
	Panel    *panel.Service
	Fees     *fees.Service
	History  *history.Service
	Backend  *backend.Client
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	svcs Services,
	authMetrics *metrics.AuthMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok", "env": cfg.App.Env})
	})
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authcontrollers.Login(svcs.Auth, logg))
		r.Post("/register", authcontrollers.Register(svcs.Auth, logg))
		r.Post("/register-seller", authcontrollers.RegisterSeller(svcs.Auth, logg))
		r.Post("/logout", authcontrollers.Logout(svcs.Auth, logg))
		r.Get("/session", authcontrollers.Session(svcs.Sessions, logg))
	})

	// Every navigable route runs through the gate before its handler, so a
	// denied navigation never triggers the screen's fetches.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Gate(svcs.Sessions, Classify, authMetrics, logg))

		r.Get("/pay/{slug}", appcontrollers.PaymentPage(svcs.Backend, logg))

		r.Get("/login", screen("login"))
		r.Get("/signup", screen("signup"))
		r.Get("/signup/seller", screen("signup-seller"))

		r.Get("/dashboard", appcontrollers.Dashboard(logg))
		r.Get("/transactions", appcontrollers.Transactions(svcs.History, logg))
		r.Get("/payment-links", screen("payment-links"))
		r.Get("/account", screen("account"))

		r.Get("/sellers", appcontrollers.Sellers(svcs.Backend, logg))
		r.Get("/fees/{sellerId}", appcontrollers.InterestSchedule(svcs.Fees, logg))
		r.Put("/fees/{sellerId}", appcontrollers.SaveInterestSchedule(svcs.Fees, logg))
		r.Get("/branding", screen("branding"))

		r.Get("/admin", appcontrollers.AdminPanel(svcs.Panel, logg))
		r.Post("/admin/refresh", appcontrollers.AdminPanelRefresh(svcs.Panel, logg))
		r.Get("/admin/marketplaces", screen("admin-marketplaces"))
		r.Get("/admin/sellers", screen("admin-sellers"))
	})

	return r
}

// screen is the descriptor handler for routes whose content lives entirely
// in the shell; the core only decides whether the navigation is allowed.
func screen(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, map[string]string{"screen": name})
	}
}
