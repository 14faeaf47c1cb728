package models

import "time"

type SupplierModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"not null"`
	GameNickname string  `gorm:"not null"`
	Debt         float64 `gorm:"not null;default:0"`
	OrdersCount  int64   `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"index:idx_suppliers_created_at"`
	UpdatedAt    time.Time
}
