package request

type CreateSupplierRequest struct {
	Name         string  `json:"name" binding:"required"`
	GameNickname string  `json:"gameNickname" binding:"required"`
	Debt         float64 `json:"debt"`
	OrdersCount  int64   `json:"ordersCount"`
}

type UpdateSupplierRequest struct {
	Name         *string  `json:"name"`
	GameNickname *string  `json:"gameNickname"`
	Debt         *float64 `json:"debt"`
	OrdersCount  *int64   `json:"ordersCount"`
}
