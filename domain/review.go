package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a live customer rating. One row per (customer, item); a new
// rating overwrites the previous one.
type Review struct {
	CustomerID uint      `gorm:"column:customer_id;primaryKey" json:"customer_id"`
	ItemID     uint64    `gorm:"column:item_id;primaryKey" json:"item_id"`
	Rating     int       `gorm:"column:rating;not null" json:"rating"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
