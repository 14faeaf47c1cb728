package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kizuma-trade/backoffice-service/internal/delivery/http/dto/request"
	"github.com/kizuma-trade/backoffice-service/internal/delivery/http/dto/response"
	"github.com/kizuma-trade/backoffice-service/internal/usecase"
	supplierdto "github.com/kizuma-trade/backoffice-service/internal/usecase/dto/supplier"
)

type SupplierHandler struct {
	uc usecase.SupplierUsecase
}

func NewSupplierHandler(uc usecase.SupplierUsecase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

func (h *SupplierHandler) GetSuppliers(c *gin.Context) {
	suppliers, err := h.uc.GetSuppliers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDomainSuppliers(suppliers))
}

func (h *SupplierHandler) GetSupplierByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	supplier, err := h.uc.GetSupplierByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDomainSupplier(supplier))
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req request.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "name and gameNickname are required"})
		return
	}

	supplier, err := h.uc.CreateSupplier(c.Request.Context(), &supplierdto.CreateSupplierInput{
		Name:         req.Name,
		GameNickname: req.GameNickname,
		Debt:         req.Debt,
		OrdersCount:  req.OrdersCount,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDomainSupplier(supplier))
}

func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req request.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}

	supplier, err := h.uc.UpdateSupplier(c.Request.Context(), id, &supplierdto.UpdateSupplierInput{
		Name:         req.Name,
		GameNickname: req.GameNickname,
		Debt:         req.Debt,
		OrdersCount:  req.OrdersCount,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDomainSupplier(supplier))
}

func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.uc.DeleteSupplier(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "supplier deleted"})
}

func (h *SupplierHandler) GetStats(c *gin.Context) {
	stats, err := h.uc.GetStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.StatsResponse{
		TotalDebt:     stats.TotalDebt,
		TotalOrders:   stats.TotalOrders,
		SupplierCount: stats.SupplierCount,
	})
}
