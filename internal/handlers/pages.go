package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) IndexPage(c *gin.Context) {
	render(c, http.StatusOK, "index.html", gin.H{"Title": "Painterflow"})
}

func (h *Handler) FeaturesPage(c *gin.Context) {
	render(c, http.StatusOK, "features.html", gin.H{"Title": "Features"})
}

func (h *Handler) PricingPage(c *gin.Context) {
	render(c, http.StatusOK, "pricing.html", gin.H{"Title": "Pricing"})
}

func (h *Handler) Health(c *gin.Context) {
	sqlDB, err := h.Store.DB().DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		log.Printf("health: %v", err)
		c.String(http.StatusServiceUnavailable, "db unavailable")
		return
	}
	c.String(http.StatusOK, "ok")
}
