package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kizuma-trade/backoffice-service/internal/delivery/http/dto/request"
	"github.com/kizuma-trade/backoffice-service/internal/delivery/http/dto/response"
	"github.com/kizuma-trade/backoffice-service/internal/usecase"
)

type SellerHandler struct {
	uc usecase.SellerUsecase
}

func NewSellerHandler(uc usecase.SellerUsecase) *SellerHandler {
	return &SellerHandler{uc: uc}
}

func (h *SellerHandler) GetSeller(c *gin.Context) {
	seller, err := h.uc.GetSeller(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDomainSeller(seller))
}

func (h *SellerHandler) UpdateBalance(c *gin.Context) {
	var req request.UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "balance is required"})
		return
	}

	if err := h.uc.UpdateBalance(c.Request.Context(), *req.Balance); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "balance updated"})
}
