package httpserver

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

// proxyHandler fetches remote product images through the API origin so the
// frontend never talks to the image CDNs directly. Only exact hostnames from
// the allow-list may be fetched.
type proxyHandler struct {
	allowedHosts map[string]bool
	client       *http.Client
	logger       *log.Logger
}

func newProxyHandler(hosts []string, logger *log.Logger) *proxyHandler {
	allowed := make(map[string]bool, len(hosts))
	for _, h := range hosts {
		allowed[h] = true
	}
	return &proxyHandler{
		allowedHosts: allowed,
		client:       &http.Client{Timeout: 15 * time.Second},
		logger:       logger,
	}
}

func (h *proxyHandler) serve(c *gin.Context) {
	raw := c.Query("url")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url parameter required"})
		return
	}

	target, err := url.Parse(raw)
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") || target.Hostname() == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid url"})
		return
	}
	if !h.allowedHosts[target.Hostname()] {
		c.JSON(http.StatusForbidden, gin.H{"error": "host not allowed"})
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, target.String(), nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid url"})
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Printf("proxy: fetch %s: %v", target.Hostname(), err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream fetch failed"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.Status(resp.StatusCode)
		return
	}

	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, resp.ContentLength, contentType, resp.Body, nil)
}
