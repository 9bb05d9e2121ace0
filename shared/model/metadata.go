package model

import "time"

// Metadata carries the audit fields persisted with every record. The field
// names follow the snapshot layout of the persisted collections.
type Metadata struct {
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	CreatedBy  string    `json:"createdBy"`
	ModifiedBy string    `json:"modifiedBy"`
}
