package enums

import "fmt"

// RouteClass is the static access classification of a navigable route.
type RouteClass string

const (
	// RouteClassPublic routes are reachable only while unauthenticated
	// (login/signup screens).
	RouteClassPublic RouteClass = "public"
	// RouteClassUnguarded routes are reachable regardless of auth state
	// (public payment pages).
	RouteClassUnguarded RouteClass = "unguarded"
	// RouteClassShared routes require any authenticated identity.
	RouteClassShared RouteClass = "shared"
	// RouteClassMarketplaceOnly routes require a marketplace identity.
	RouteClassMarketplaceOnly RouteClass = "marketplace_only"
	// RouteClassAdminOnly routes require an admin identity.
	RouteClassAdminOnly RouteClass = "admin_only"
)

var validRouteClasses = []RouteClass{
	RouteClassPublic,
	RouteClassUnguarded,
	RouteClassShared,
	RouteClassMarketplaceOnly,
	RouteClassAdminOnly,
}

// String implements fmt.Stringer.
func (c RouteClass) String() string {
	return string(c)
}

// IsValid reports whether the value is a known RouteClass.
func (c RouteClass) IsValid() bool {
	for _, candidate := range validRouteClasses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseRouteClass converts raw input into a RouteClass.
func ParseRouteClass(value string) (RouteClass, error) {
	for _, candidate := range validRouteClasses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid route class %q", value)
}
