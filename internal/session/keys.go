package session

// Storage keys for the session pair and every role-scoped cache the
// application writes. Logout deletes exactly this list; it is an allow-list
// on purpose so unrelated keys in a shared store survive.
const (
	KeyIdentity = "paylink:session:identity"
	KeyToken    = "paylink:session:token"

	KeyPanelCache            = "paylink:cache:panel"
	KeyMarketplacesCache     = "paylink:cache:marketplaces"
	KeySellersCache          = "paylink:cache:sellers"
	KeyInterestScheduleCache = "paylink:cache:interest_schedule"
	KeyTransactionsCache     = "paylink:cache:transactions"
	KeyBrandingCache         = "paylink:cache:branding"
)

// PurgeKeys is the complete enumeration removed by Clear.
var PurgeKeys = []string{
	KeyIdentity,
	KeyToken,
	KeyPanelCache,
	KeyMarketplacesCache,
	KeySellersCache,
	KeyInterestScheduleCache,
	KeyTransactionsCache,
	KeyBrandingCache,
}
