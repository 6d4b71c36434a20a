package httpserver

import (
	"net/http"

	"github.com/SahakyanGor98/iqos/internal/service/contact"
	"github.com/gin-gonic/gin"
)

type contactHandler struct {
	svc *contact.Service
}

func (h *contactHandler) submit(c *gin.Context) {
	var req contact.Submission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, contact.Result{Success: false, Error: "Неверные данные формы"})
		return
	}

	result := h.svc.Submit(c.Request.Context(), req)
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
