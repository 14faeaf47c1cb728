package domain

// SellerID is the fixed id of the singleton seller row.
const SellerID int64 = 1

type Seller struct {
	ID           int64
	Name         string
	Balance      float64
	GameNickname string
}
