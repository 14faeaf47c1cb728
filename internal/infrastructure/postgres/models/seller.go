package models

type SellerModel struct {
	ID           int64   `gorm:"primaryKey"`
	Name         string  `gorm:"not null"`
	Balance      float64 `gorm:"not null;default:0"`
	GameNickname string  `gorm:"not null"`
}
