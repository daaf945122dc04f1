package domain

import "github.com/google/uuid"

const (
	SourceCurator = "curator"
	SourceGeneric = "generic"
)

// RatingRow is a (person, item, rating) triple as read from the store.
type RatingRow struct {
	PersonID uint    `gorm:"column:customer_id" json:"customer_id"`
	ItemID   uint64  `gorm:"column:item_id" json:"item_id"`
	Rating   float64 `gorm:"column:rating" json:"rating"`
}

// ScoredItem is one entry of a ranked candidate list.
type ScoredItem struct {
	ItemID uint64  `gorm:"column:item_id" json:"item_id"`
	Score  float64 `gorm:"column:score" json:"score"`
}

type Recommendation struct {
	ItemIDs            []uint64  `json:"item_ids"`
	Source             string    `json:"source"`
	CuratorID          *uint     `json:"curator_id,omitempty"`
	FallbackReason     string    `json:"fallback_reason,omitempty"`
	SnapshotID         uuid.UUID `json:"snapshot_id"`
	SnapshotGeneration int64     `json:"snapshot_generation"`
}
