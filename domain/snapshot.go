package domain

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is a handle to one generation of the derived recommendation
// tables. Recommendation reads are always scoped to a snapshot ID.
type Snapshot struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Generation        int64     `gorm:"column:generation;not null;uniqueIndex" json:"generation"`
	PopularItems      int       `gorm:"column:popular_items;not null" json:"popular_items"`
	DefinitiveRatings int       `gorm:"column:definitive_ratings;not null" json:"definitive_ratings"`
	RefreshedAt       time.Time `gorm:"column:refreshed_at;not null" json:"refreshed_at"`
}

func (Snapshot) TableName() string {
	return "snapshots"
}

// PopularItem is one of the two best-selling items of its category at
// refresh time.
type PopularItem struct {
	SnapshotID uuid.UUID `gorm:"column:snapshot_id;type:uuid;primaryKey"`
	ItemID     uint64    `gorm:"column:item_id;primaryKey"`
}

func (PopularItem) TableName() string {
	return "popular_items"
}

// DefinitiveRating is a curator's rating on a popular item, frozen at
// refresh time.
type DefinitiveRating struct {
	SnapshotID uuid.UUID `gorm:"column:snapshot_id;type:uuid;primaryKey"`
	CustomerID uint      `gorm:"column:customer_id;primaryKey"`
	ItemID     uint64    `gorm:"column:item_id;primaryKey"`
	Rating     int       `gorm:"column:rating;not null"`
}

func (DefinitiveRating) TableName() string {
	return "definitive_ratings"
}

// ItemSales is the total purchased quantity of an item.
type ItemSales struct {
	ItemID     uint64 `gorm:"column:item_id"`
	CategoryID uint64 `gorm:"column:category_id"`
	Quantity   int64  `gorm:"column:quantity"`
}
