package httpserver

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/SahakyanGor98/iqos/internal/cart"
	"github.com/SahakyanGor98/iqos/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

const (
	cartCookieName   = "cart_token"
	cartCookieMaxAge = int(30 * 24 * time.Hour / time.Second)
	ctxCartToken     = "cartToken"
)

func newCartToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate cart token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// cartTokenMiddleware resolves the session's cart token from the cart_token
// cookie, issuing a fresh one when absent.
func cartTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cartCookieName)
		if err != nil || token == "" {
			token, err = newCartToken()
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
				return
			}
			c.SetCookie(cartCookieName, token, cartCookieMaxAge, "/", "", false, true)
		}
		c.Set(ctxCartToken, token)
		c.Next()
	}
}

func cartToken(c *gin.Context) string {
	return c.GetString(ctxCartToken)
}

type cartHandler struct {
	store   *cart.Store
	catalog *catalog.Service
	logger  *log.Logger
}

type cartItemResponse struct {
	Product  productResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

type cartResponse struct {
	Items      []cartItemResponse `json:"items"`
	TotalPrice int64              `json:"totalPrice"`
	TotalItems int                `json:"totalItems"`
}

func (h *cartHandler) snapshot(token string) cartResponse {
	items, totalPrice, totalItems := h.store.Snapshot(token)
	out := cartResponse{
		Items:      make([]cartItemResponse, 0, len(items)),
		TotalPrice: totalPrice,
		TotalItems: totalItems,
	}
	for _, it := range items {
		out.Items = append(out.Items, cartItemResponse{
			Product:  toProductResponse(it.Product),
			Quantity: it.Quantity,
		})
	}
	return out
}

func (h *cartHandler) get(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot(cartToken(c)))
}

type addCartItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity"`
}

func (h *cartHandler) addItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверные данные запроса"})
		return
	}

	products, err := h.catalog.GetByIDs(c.Request.Context(), []int64{req.ProductID})
	if err != nil {
		h.logger.Printf("cart add: load product %d: %v", req.ProductID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}
	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": msgProductNotFound})
		return
	}

	token := cartToken(c)
	h.store.Add(token, products[0], req.Quantity)
	c.JSON(http.StatusOK, h.snapshot(token))
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *cartHandler) updateItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный идентификатор товара"})
		return
	}

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверные данные запроса"})
		return
	}

	token := cartToken(c)
	h.store.UpdateQuantity(token, productID, req.Quantity)
	c.JSON(http.StatusOK, h.snapshot(token))
}

func (h *cartHandler) removeItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный идентификатор товара"})
		return
	}

	token := cartToken(c)
	h.store.Remove(token, productID)
	c.JSON(http.StatusOK, h.snapshot(token))
}

func (h *cartHandler) clear(c *gin.Context) {
	token := cartToken(c)
	h.store.Clear(token)
	c.JSON(http.StatusOK, h.snapshot(token))
}
