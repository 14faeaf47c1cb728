package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kizuma-trade/backoffice-service/internal/delivery/http/dto/response"
	"github.com/kizuma-trade/backoffice-service/internal/domain"
)

func writeError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrSupplierNotFound),
		errors.Is(err, domain.ErrSellerNotFound):
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
		slog.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}
