package metrics

// Recorder feeds the marketplace counters above. It satisfies
// ports.MarketplaceMetrics so the services never import this package.
type Recorder struct{}

func NewRecorder() Recorder { return Recorder{} }

func (Recorder) ProductCreated() { ProductsCreatedTotal.Inc() }

func (Recorder) BidPlaced() { BidsPlacedTotal.Inc() }

func (Recorder) AuthorizationDenied(resource, operation string) {
	AuthorizationDeniedTotal.WithLabelValues(resource, operation).Inc()
}

func (Recorder) AdminOverride(resource, operation string) {
	AdminOverridesTotal.WithLabelValues(resource, operation).Inc()
}

func (Recorder) IdempotentReplay(resource string) {
	IdempotentReplaysTotal.WithLabelValues(resource).Inc()
}
