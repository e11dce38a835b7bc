package domain

import "time"

// ActivityAction names a successful mutation recorded in the audit trail.
type ActivityAction string

const (
	ActionProductCreated  ActivityAction = "product.created"
	ActionProductUpdated  ActivityAction = "product.updated"
	ActionProductDeleted  ActivityAction = "product.deleted"
	ActionPictureUploaded ActivityAction = "product.picture_uploaded"
	ActionBidPlaced       ActivityAction = "bid.placed"
	ActionBidDeleted      ActivityAction = "bid.deleted"
	ActionUserRegistered  ActivityAction = "user.registered"
)

// ActivityEvent is one audit record. AsAdmin is true when the actor was not
// the owner and the mutation went through on the admin bypass.
type ActivityEvent struct {
	Action     ActivityAction `json:"action" bson:"action"`
	Resource   string         `json:"resource" bson:"resource"`
	ResourceID int64          `json:"resourceId" bson:"resource_id"`
	ActorID    int64          `json:"actorId" bson:"actor_id"`
	AsAdmin    bool           `json:"asAdmin" bson:"as_admin"`
	OccurredAt time.Time      `json:"occurredAt" bson:"occurred_at"`
}
