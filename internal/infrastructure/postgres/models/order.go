package models

import (
	"time"

	"github.com/kizuma-trade/backoffice-service/internal/domain"
)

type OrderModel struct {
	ID         int64              `gorm:"primaryKey;autoIncrement"`
	SupplierID int64              `gorm:"not null;index:idx_orders_supplier_status"`
	Supplier   SupplierModel      `gorm:"foreignKey:SupplierID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ImageURL   string             `gorm:"not null"`
	Cost       float64            `gorm:"not null;default:0"`
	Premium    float64            `gorm:"not null;default:0"`
	DebtAmount float64            `gorm:"not null;default:0"`
	Status     domain.OrderStatus `gorm:"not null;default:'active';index:idx_orders_supplier_status"`
	Notes      string
	IsSplit    bool `gorm:"not null;default:false"`
	SplitWith  string
	CreatedAt  time.Time `gorm:"index:idx_orders_created_at"`
	UpdatedAt  time.Time
}
