package httpserver

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/SahakyanGor98/iqos/internal/domain"
	"github.com/SahakyanGor98/iqos/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

const (
	msgUnknownCategory = "Неизвестная категория"
	msgProductNotFound = "Товар не найден"
	msgInternalError   = "Произошла непредвиденная ошибка"
)

type catalogHandler struct {
	svc    *catalog.Service
	logger *log.Logger
}

type productResponse struct {
	ID          int64         `json:"id"`
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Image       string        `json:"image"`
	Price       int64         `json:"price"`
	Category    string        `json:"category"`
	InStock     bool          `json:"inStock"`
	Badges      domain.Badges `json:"badges"`
	Brand       string        `json:"brand,omitempty"`
	Attributes  interface{}   `json:"attributes,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type listProductsResponse struct {
	Data  []productResponse `json:"data"`
	Count int64             `json:"count"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Price:       p.Price,
		Category:    string(p.Category),
		InStock:     p.InStock,
		Badges:      p.Badges,
		Brand:       p.Brand,
		Attributes:  p.Attributes(),
		CreatedAt:   p.CreatedAt,
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

// reservedParams are query keys with a fixed meaning; everything else is
// treated as an attribute filter.
var reservedParams = map[string]bool{
	"page":     true,
	"limit":    true,
	"sort":     true,
	"minPrice": true,
	"maxPrice": true,
}

func parseListParams(category domain.Category, values url.Values) catalog.ListParams {
	params := catalog.ListParams{
		Category: category,
		Page:     parseIntParam(values.Get("page")),
		Limit:    parseIntParam(values.Get("limit")),
		Sort:     values.Get("sort"),
		MinPrice: parsePriceParam(values.Get("minPrice")),
		MaxPrice: parsePriceParam(values.Get("maxPrice")),
		Filters:  map[string][]string{},
	}
	for key, vals := range values {
		if reservedParams[key] {
			continue
		}
		params.Filters[key] = vals
	}
	return params
}

func parseIntParam(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func parsePriceParam(raw string) *int64 {
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func (h *catalogHandler) list(c *gin.Context) {
	category := domain.Category(c.Param("category"))
	if !category.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": msgUnknownCategory})
		return
	}

	params := parseListParams(category, c.Request.URL.Query())
	result := h.svc.List(c.Request.Context(), params)
	c.JSON(http.StatusOK, listProductsResponse{
		Data:  toProductResponses(result.Data),
		Count: result.Count,
	})
}

func (h *catalogHandler) listSlugs(c *gin.Context) {
	category := domain.Category(c.Param("category"))
	if !category.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": msgUnknownCategory})
		return
	}

	slugs := h.svc.Slugs(c.Request.Context(), category)
	c.JSON(http.StatusOK, gin.H{"slugs": slugs})
}

func (h *catalogHandler) getBySlug(c *gin.Context) {
	slug := c.Param("slug")

	product, err := h.svc.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgProductNotFound})
			return
		}
		h.logger.Printf("get product %q: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}

	c.JSON(http.StatusOK, toProductResponse(*product))
}
