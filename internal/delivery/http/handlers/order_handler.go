package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kizuma-trade/backoffice-service/internal/delivery/http/dto/request"
	"github.com/kizuma-trade/backoffice-service/internal/delivery/http/dto/response"
	"github.com/kizuma-trade/backoffice-service/internal/usecase"
	orderdto "github.com/kizuma-trade/backoffice-service/internal/usecase/dto/order"
)

type OrderHandler struct {
	uc usecase.OrderUsecase
}

func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) GetSupplierOrders(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	orders, err := h.uc.GetOrdersBySupplierID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDomainOrders(orders))
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "supplierId, imageUrl and cost are required"})
		return
	}

	order, err := h.uc.CreateOrder(c.Request.Context(), &orderdto.CreateOrderInput{
		SupplierID: req.SupplierID,
		ImageURL:   req.ImageURL,
		Cost:       *req.Cost,
		Premium:    req.Premium,
		Notes:      req.Notes,
		IsSplit:    req.IsSplit,
		SplitWith:  req.SplitWith,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDomainOrder(order))
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.uc.UpdateOrder(c.Request.Context(), id, &orderdto.UpdateOrderInput{
		ImageURL: req.ImageURL,
		Cost:     req.Cost,
		Premium:  req.Premium,
		Status:   req.Status,
		Notes:    req.Notes,
		IsSplit:  req.IsSplit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDomainOrder(order))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.uc.DeleteOrder(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "order deleted"})
}

func (h *OrderHandler) SplitOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	// the body is optional: an empty splitWith gets generated
	var req request.SplitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.uc.SplitOrder(c.Request.Context(), id, req.SplitWith)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.SplitResponse{
		Original: response.FromDomainOrder(result.Original),
		Sibling:  response.FromDomainOrder(result.Sibling),
	})
}
