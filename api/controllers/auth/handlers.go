package auth

import (
	"net/http"

	"github.com/paylinkbr/paylink-core/api/responses"
	"github.com/paylinkbr/paylink-core/api/validators"
	"github.com/paylinkbr/paylink-core/internal/gateway"
	"github.com/paylinkbr/paylink-core/internal/session"
	pkgerrors "github.com/paylinkbr/paylink-core/pkg/errors"
	"github.com/paylinkbr/paylink-core/pkg/logger"
)

// LoginRequest is the shell-facing login body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login wires the credential exchange into the HTTP layer.
func Login(svc gateway.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth gateway unavailable"))
			return
		}

		var body LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := svc.Login(r.Context(), body.Email, body.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"user": id})
	}
}

// Register handles marketplace signup. The gateway returns a result value,
// not an error; the envelope mirrors that so the shell branches on the
// error field exactly as before.
func Register(svc gateway.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth gateway unavailable"))
			return
		}

		var body gateway.SignupRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result := svc.Signup(r.Context(), body)
		responses.WriteSuccess(w, result)
	}
}

// RegisterSeller handles seller signup with marketplace scope resolution.
func RegisterSeller(svc gateway.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth gateway unavailable"))
			return
		}

		var body gateway.SellerSignupRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.SignupSeller(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// Logout tears the session down and purges the role-scoped caches.
func Logout(svc gateway.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth gateway unavailable"))
			return
		}
		if err := svc.Logout(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"logged_out": true})
	}
}

// Session reports the current session state so the shell can restore its
// chrome after a reload.
func Session(sessions *session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current := sessions.Current()
		if current == nil {
			responses.WriteSuccess(w, map[string]any{"authenticated": false})
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"authenticated": true,
			"user":          current,
		})
	}
}
