package response

import "github.com/kizuma-trade/backoffice-service/internal/domain"

type SellerResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Balance      float64 `json:"balance"`
	GameNickname string  `json:"gameNickname"`
}

func FromDomainSeller(seller *domain.Seller) SellerResponse {
	return SellerResponse{
		ID:           seller.ID,
		Name:         seller.Name,
		Balance:      seller.Balance,
		GameNickname: seller.GameNickname,
	}
}
