package request

type CreateOrderRequest struct {
	SupplierID int64    `json:"supplierId" binding:"required"`
	ImageURL   string   `json:"imageUrl" binding:"required"`
	Cost       *float64 `json:"cost" binding:"required"`
	Premium    float64  `json:"premium"`
	Notes      string   `json:"notes"`
	IsSplit    bool     `json:"isSplit"`
	SplitWith  string   `json:"splitWith"`
}

type UpdateOrderRequest struct {
	ImageURL *string  `json:"imageUrl"`
	Cost     *float64 `json:"cost"`
	Premium  *float64 `json:"premium"`
	Status   *string  `json:"status"`
	Notes    *string  `json:"notes"`
	IsSplit  *bool    `json:"isSplit"`
}

type SplitOrderRequest struct {
	SplitWith string `json:"splitWith"`
}
