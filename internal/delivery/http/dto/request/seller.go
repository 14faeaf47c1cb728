package request

type UpdateBalanceRequest struct {
	Balance *float64 `json:"balance" binding:"required"`
}
