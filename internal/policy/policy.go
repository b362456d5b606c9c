package policy

import (
	"github.com/paylinkbr/paylink-core/internal/identity"
	"github.com/paylinkbr/paylink-core/pkg/enums"
)

// Redirect targets for denied navigations.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Decision is the outcome of evaluating a navigation request. Exactly one of
// Allow / RedirectTo applies.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(path string) Decision {
	return Decision{RedirectTo: path}
}

// Decide maps (identity, route class) to a decision. Pure: no I/O, no
// session reads, total over the role/class cross product. Every restricted
// class denies by default, so a role value that slipped past validation can
// only ever redirect.
func Decide(id *identity.Identity, class enums.RouteClass) Decision {
	if class == enums.RouteClassUnguarded {
		return allow()
	}

	if id == nil {
		if class == enums.RouteClassPublic {
			return allow()
		}
		return redirect(LoginPath)
	}

	// Authenticated identities are steered away from login/signup screens.
	if class == enums.RouteClassPublic {
		return redirect(DashboardPath)
	}

	switch id.Role {
	case enums.RoleAdmin:
		if class == enums.RouteClassShared || class == enums.RouteClassAdminOnly {
			return allow()
		}
	case enums.RoleMarketplace:
		if class == enums.RouteClassShared || class == enums.RouteClassMarketplaceOnly {
			return allow()
		}
	case enums.RoleSeller, enums.RoleCustomer:
		if class == enums.RouteClassShared {
			return allow()
		}
	}

	return redirect(DashboardPath)
}
