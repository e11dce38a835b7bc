package ports

// MarketplaceMetrics receives business counters from the services.
type MarketplaceMetrics interface {
	ProductCreated()
	BidPlaced()
	AuthorizationDenied(resource, operation string)
	AdminOverride(resource, operation string)
	IdempotentReplay(resource string)
}
