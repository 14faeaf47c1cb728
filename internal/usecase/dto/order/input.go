package order

// CreateOrderInput carries everything needed to register a new order
// against a supplier. DebtAmount is always derived, never accepted.
type CreateOrderInput struct {
	SupplierID int64
	ImageURL   string
	Cost       float64
	Premium    float64
	Notes      string
	IsSplit    bool
	SplitWith  string
}

// UpdateOrderInput is a partial update: nil fields keep their stored
// value. Changing cost, premium or isSplit recomputes the debt amount.
type UpdateOrderInput struct {
	ImageURL *string
	Cost     *float64
	Premium  *float64
	Status   *string
	Notes    *string
	IsSplit  *bool
}
