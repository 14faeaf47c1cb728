package supplier

// CreateSupplierInput registers a new supplier. Debt and OrdersCount
// may carry an opening balance, after that they are derived.
type CreateSupplierInput struct {
	Name         string
	GameNickname string
	Debt         float64
	OrdersCount  int64
}

// UpdateSupplierInput is a partial update: nil fields keep their
// stored value. Debt and OrdersCount stay directly writable the way
// the directory API always allowed.
type UpdateSupplierInput struct {
	Name         *string
	GameNickname *string
	Debt         *float64
	OrdersCount  *int64
}
