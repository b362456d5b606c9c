package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paylinkbr/paylink-core/api/middleware"
	"github.com/paylinkbr/paylink-core/api/responses"
	"github.com/paylinkbr/paylink-core/api/validators"
	"github.com/paylinkbr/paylink-core/internal/backend"
	"github.com/paylinkbr/paylink-core/internal/fees"
	"github.com/paylinkbr/paylink-core/internal/history"
	"github.com/paylinkbr/paylink-core/internal/panel"
	pkgerrors "github.com/paylinkbr/paylink-core/pkg/errors"
	"github.com/paylinkbr/paylink-core/pkg/logger"
)

// Dashboard returns the signed-in identity summary the shell renders first.
func Dashboard(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current := middleware.IdentityFromContext(r.Context())
		if current == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "identity missing after gate"))
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"user": current,
			"role": current.Role.String(),
		})
	}
}

// AdminPanel serves the denormalized marketplace/seller snapshot.
func AdminPanel(svc *panel.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.Cached(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snap)
	}
}

// AdminPanelRefresh forces a refetch of both listings.
func AdminPanelRefresh(svc *panel.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.Refresh(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snap)
	}
}

// Sellers lists the sellers visible to the current marketplace.
func Sellers(client *backend.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellers, err := client.ListSellers(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch sellers"))
			return
		}
		responses.WriteSuccess(w, sellers)
	}
}

// Transactions serves the payment-link history for the current identity.
func Transactions(svc *history.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactions, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, transactions)
	}
}

// InterestSchedule returns a seller's per-installment schedule.
func InterestSchedule(svc *fees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID := chi.URLParam(r, "sellerId")
		schedule, err := svc.Get(r.Context(), sellerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, schedule)
	}
}

// SaveInterestSchedule replaces a seller's schedule after shape validation.
func SaveInterestSchedule(svc *fees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID := chi.URLParam(r, "sellerId")

		var schedule fees.Schedule
		if err := validators.DecodeJSONBody(r, &schedule); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		schedule.SellerID = sellerID

		if err := svc.Save(r.Context(), &schedule); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, schedule)
	}
}

// PaymentPage serves the public payment-page payload. Reachable without a
// session; the route class is unguarded.
func PaymentPage(client *backend.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		page, err := client.GetPaymentPage(r.Context(), slug)
		if err != nil {
			if serverErr := backend.AsError(err); serverErr != nil && serverErr.Status == http.StatusNotFound {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeNotFound, "payment link not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch payment page"))
			return
		}
		responses.WriteSuccess(w, page)
	}
}
