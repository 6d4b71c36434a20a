package httpserver

import (
	"net/http"

	"github.com/SahakyanGor98/iqos/internal/cart"
	"github.com/SahakyanGor98/iqos/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

type checkoutHandler struct {
	svc   *checkout.Service
	carts *cart.Store
}

type checkoutRequest struct {
	checkout.CustomerInfo
	Items []checkout.Item `json:"items"`
}

func (h *checkoutHandler) placeOrder(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, checkout.Result{Success: false, Error: "Неверные данные формы"})
		return
	}

	result := h.svc.PlaceOrder(c.Request.Context(), req.CustomerInfo, req.Items)
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	if token := cartToken(c); token != "" {
		h.carts.Clear(token)
	}
	c.JSON(http.StatusOK, result)
}
