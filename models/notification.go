package models

import "time"

// CatalogChangedEvent is the fire-and-forget signal published when catalog
// data changes (admin edit, upstream sync). The category may be empty, which
// means "everything changed".
type CatalogChangedEvent struct {
	Category  string    `json:"category,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	ChangedAt time.Time `json:"changedAt"`
}

// CatalogRefreshPayload is the asynq task payload for re-warming a category.
type CatalogRefreshPayload struct {
	Category string `json:"category,omitempty"`
}
