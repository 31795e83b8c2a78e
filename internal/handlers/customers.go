package handlers

import (
	"net/http"
	"strings"

	"painterflow/internal/httpx"
	"painterflow/internal/models"

	"github.com/gin-gonic/gin"
)

type customerForm struct {
	Name    string `form:"name" json:"name"`
	Phone   string `form:"phone" json:"phone"`
	Email   string `form:"email" json:"email"`
	Address string `form:"address" json:"address"`
	Notes   string `form:"notes" json:"notes"`
}

func (f customerForm) customer() (*models.Customer, error) {
	v := httpx.Violations{}
	v.Required("name", f.Name)
	if !v.Empty() {
		return nil, v
	}
	return &models.Customer{
		Name:    strings.TrimSpace(f.Name),
		Phone:   models.NullString(strings.TrimSpace(f.Phone)),
		Email:   models.NullString(strings.TrimSpace(f.Email)),
		Address: models.NullString(strings.TrimSpace(f.Address)),
		Notes:   models.NullString(strings.TrimSpace(f.Notes)),
	}, nil
}

func (h *Handler) ListCustomers(c *gin.Context) {
	h.customersPage(c, http.StatusOK, "")
}

func (h *Handler) customersPage(c *gin.Context, status int, errMsg string) {
	customers, err := h.Store.ListCustomers(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err, nil)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}

	respond(c, status, "customers.html", gin.H{
		"Title":        "Customers",
		"Nav":          "customers",
		"customers":    customers,
		"PlacesAPIKey": h.Cfg.PlacesAPIKey,
		"ShowForm":     errMsg != "",
		"error":        errMsg,
	}, customers)
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	page := func(status int, msg string) { h.customersPage(c, status, msg) }

	var form customerForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, httpx.Violations{"form": "invalid"}, page)
		return
	}
	customer, err := form.customer()
	if err != nil {
		fail(c, err, page)
		return
	}
	if err := h.Store.CreateCustomer(c.Request.Context(), userID(c), customer); err != nil {
		fail(c, err, page)
		return
	}
	done(c, http.StatusCreated, "/app/customers", customer)
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	page := func(status int, msg string) { h.customersPage(c, status, msg) }
	if !confirmed(c) {
		fail(c, errNotConfirmed, page)
		return
	}
	if err := h.Store.DeleteCustomer(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		fail(c, err, page)
		return
	}
	done(c, http.StatusNoContent, "/app/customers", nil)
}
