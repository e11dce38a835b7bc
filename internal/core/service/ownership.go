package service

import (
	"github.com/99minutos/auction-marketplace/internal/core/domain"
	"github.com/99minutos/auction-marketplace/internal/core/ports"
)

// authorize enforces the owner-or-admin rule for a mutation on resource.
// The owner id must come from a fresh read of the stored row, never from the
// request body.
func authorize(m ports.MarketplaceMetrics, who domain.Identity, ownerID int64, resource, operation string) error {
	if !who.CanMutate(ownerID) {
		m.AuthorizationDenied(resource, operation)
		return domain.ErrForbidden
	}
	if who.UserID != ownerID {
		m.AdminOverride(resource, operation)
	}
	return nil
}

// nopMetrics is used when a service is built without a metrics sink.
type nopMetrics struct{}

func (nopMetrics) ProductCreated()                    {}
func (nopMetrics) BidPlaced()                         {}
func (nopMetrics) AuthorizationDenied(string, string) {}
func (nopMetrics) AdminOverride(string, string)       {}
func (nopMetrics) IdempotentReplay(string)            {}

func metricsOrNop(m ports.MarketplaceMetrics) ports.MarketplaceMetrics {
	if m == nil {
		return nopMetrics{}
	}
	return m
}

// activity builds an audit event for a mutation by who on a resource owned by ownerID.
func activity(action domain.ActivityAction, resource string, resourceID int64, who domain.Identity, ownerID int64) domain.ActivityEvent {
	return domain.ActivityEvent{
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		ActorID:    who.UserID,
		AsAdmin:    who.UserID != ownerID,
		OccurredAt: now(),
	}
}
