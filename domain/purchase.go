package domain

import "time"

type (
	Purchase struct {
		ID         uint       `gorm:"primaryKey" json:"id"`
		CustomerID uint       `gorm:"column:customer_id;not null;index" json:"customer_id"`
		LineItems  []LineItem `gorm:"foreignKey:PurchaseID" json:"line_items"`
		CreatedAt  time.Time  `gorm:"column:created_at" json:"created_at"`
	}

	// LineItem is one item row of a purchase. Quantity feeds the best-seller
	// ranking used by snapshot refresh.
	LineItem struct {
		ID         uint   `gorm:"primaryKey" json:"id"`
		PurchaseID uint   `gorm:"column:purchase_id;not null;index" json:"purchase_id"`
		ItemID     uint64 `gorm:"column:item_id;not null;index" json:"item_id"`
		Quantity   int    `gorm:"column:quantity;not null" json:"quantity"`
	}
)

func (Purchase) TableName() string {
	return "purchases"
}

func (LineItem) TableName() string {
	return "line_items"
}
