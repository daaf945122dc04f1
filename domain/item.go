package domain

import (
	"time"
)

// CREATE TABLE public.items (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     category_id  BIGINT REFERENCES categories(category_id),
//     item_name    TEXT,
//     unit         TEXT,
//     price        NUMERIC,
//     created_at   TIMESTAMPTZ DEFAULT NOW()
// );

type Item struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID uint64    `gorm:"column:category_id;not null;index" json:"category_id"`
	ItemName   string    `gorm:"column:item_name;type:text" json:"item_name"`
	Unit       string    `gorm:"column:unit;type:text" json:"unit"`
	Price      float64   `gorm:"column:price;type:numeric" json:"price"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Item) TableName() string {
	return "items"
}
