package domain

import "context"

type SellerRepository interface {
	GetSeller(ctx context.Context) (*Seller, error)
	UpdateBalance(ctx context.Context, balance float64) error
}
