package routes

import (
	"strings"

	"github.com/paylinkbr/paylink-core/pkg/enums"
)

// routeTable is the build-time classification of every navigable route the
// shell can request. Exact paths first, then prefix entries for routes with
// dynamic tails. Never derived from request data.
var routeTable = map[string]enums.RouteClass{
	"/login":         enums.RouteClassPublic,
	"/signup":        enums.RouteClassPublic,
	"/signup/seller": enums.RouteClassPublic,

	"/dashboard":     enums.RouteClassShared,
	"/transactions":  enums.RouteClassShared,
	"/payment-links": enums.RouteClassShared,
	"/account":       enums.RouteClassShared,

	"/sellers":  enums.RouteClassMarketplaceOnly,
	"/fees":     enums.RouteClassMarketplaceOnly,
	"/branding": enums.RouteClassMarketplaceOnly,

	"/admin":              enums.RouteClassAdminOnly,
	"/admin/marketplaces": enums.RouteClassAdminOnly,
	"/admin/sellers":      enums.RouteClassAdminOnly,
}

var prefixTable = []struct {
	prefix string
	class  enums.RouteClass
}{
	{"/pay/", enums.RouteClassUnguarded},
	{"/admin/", enums.RouteClassAdminOnly},
	{"/sellers/", enums.RouteClassMarketplaceOnly},
	{"/fees/", enums.RouteClassMarketplaceOnly},
	{"/payment-links/", enums.RouteClassShared},
	{"/transactions/", enums.RouteClassShared},
}

// Classify resolves a path against the static table.
func Classify(path string) (enums.RouteClass, bool) {
	if class, ok := routeTable[path]; ok {
		return class, true
	}
	for _, entry := range prefixTable {
		if strings.HasPrefix(path, entry.prefix) {
			return entry.class, true
		}
	}
	return "", false
}
