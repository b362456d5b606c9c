package middleware

import (
	"net/http"

	"github.com/paylinkbr/paylink-core/internal/identity"
	"github.com/paylinkbr/paylink-core/internal/policy"
	"github.com/paylinkbr/paylink-core/pkg/enums"
	"github.com/paylinkbr/paylink-core/pkg/logger"
	"github.com/paylinkbr/paylink-core/pkg/metrics"
)

// SessionReader is the read-only session surface the gate consumes.
type SessionReader interface {
	Current() *identity.Identity
}

// Classifier maps a request path to its route class. ok=false means the
// path is not in the static table.
type Classifier func(path string) (enums.RouteClass, bool)

// Gate evaluates the access policy before any handler runs, so a denied
// navigation never starts the destination's fetches or cache writes. Paths
// missing from the table are treated as shared-private, which can only
// tighten access.
func Gate(sessions SessionReader, classify Classifier, m *metrics.AuthMetrics, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			class, ok := classify(r.URL.Path)
			if !ok {
				class = enums.RouteClassShared
			}

			current := sessions.Current()
			decision := policy.Decide(current, class)
			if !decision.Allow {
				m.IncGateDecision(class.String(), "redirect")
				if logg != nil {
					ctx := logg.WithFields(r.Context(), map[string]any{
						"route_class": class.String(),
						"redirect_to": decision.RedirectTo,
					})
					logg.Info(ctx, "navigation redirected")
				}
				http.Redirect(w, r, decision.RedirectTo, http.StatusFound)
				return
			}

			m.IncGateDecision(class.String(), "allow")
			ctx := r.Context()
			if current != nil {
				ctx = WithIdentity(ctx, current)
				if logg != nil {
					ctx = logg.WithIdentityID(ctx, current.ID)
					ctx = logg.WithActorRole(ctx, current.Role.String())
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
