package handlers

import (
	"net/http"
	"strings"

	"painterflow/internal/httpx"
	"painterflow/internal/models"
	"painterflow/internal/pricing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type estimateItemJSON struct {
	Label    string         `json:"label"`
	Quantity pricing.Amount `json:"quantity"`
	Rate     pricing.Amount `json:"rate"`
}

type estimateJSON struct {
	CustomerID string             `json:"customer_id"`
	Items      []estimateItemJSON `json:"items"`
}

// bindEstimate reads either the JSON body or the parallel label/quantity/rate
// arrays of the estimate form. Rows left completely blank are skipped.
func bindEstimate(c *gin.Context) (string, []pricing.LineItem, error) {
	var (
		customerID string
		items      []pricing.LineItem
	)
	if c.ContentType() == binding.MIMEJSON {
		var in estimateJSON
		if err := c.ShouldBindJSON(&in); err != nil {
			return "", nil, httpx.Violations{"body": "invalid"}
		}
		customerID = in.CustomerID
		for _, it := range in.Items {
			items = append(items, pricing.LineItem{
				Label:    strings.TrimSpace(it.Label),
				Quantity: it.Quantity.Float64(),
				Rate:     it.Rate.Float64(),
			})
		}
	} else {
		customerID = c.PostForm("customer_id")
		items = pricing.ItemsFromForm(c.PostFormArray("label"), c.PostFormArray("quantity"), c.PostFormArray("rate"))
	}

	kept := items[:0]
	for _, it := range items {
		if it.Label == "" && it.Quantity == 0 && it.Rate == 0 {
			continue
		}
		kept = append(kept, it)
	}

	v := httpx.Violations{}
	v.Required("customer_id", customerID)
	if len(kept) == 0 {
		v.Add("items", "empty")
	}
	if !v.Empty() {
		return "", nil, v
	}
	return strings.TrimSpace(customerID), kept, nil
}

func (h *Handler) ListEstimates(c *gin.Context) {
	h.estimatesPage(c, http.StatusOK, "")
}

func (h *Handler) estimatesPage(c *gin.Context, status int, errMsg string) {
	ctx := c.Request.Context()
	uid := userID(c)

	estimates, err := h.Store.ListEstimates(ctx, uid)
	if err != nil {
		fail(c, err, nil)
		return
	}
	if estimates == nil {
		estimates = []models.Estimate{}
	}
	if httpx.WantsJSON(c) {
		c.JSON(status, estimates)
		return
	}

	customers, err := h.Store.CustomerRefs(ctx, uid)
	if err != nil {
		fail(c, err, nil)
		return
	}
	render(c, status, "estimates.html", gin.H{
		"Title":     "Estimates",
		"Nav":       "estimates",
		"estimates": estimates,
		"customers": customers,
		"ShowForm":  errMsg != "",
		"error":     errMsg,
	})
}

func (h *Handler) CreateEstimate(c *gin.Context) {
	page := func(status int, msg string) { h.estimatesPage(c, status, msg) }

	customerID, items, err := bindEstimate(c)
	if err != nil {
		fail(c, err, page)
		return
	}
	est, err := h.Store.CreateEstimate(c.Request.Context(), userID(c), customerID, items)
	if err != nil {
		fail(c, err, page)
		return
	}
	done(c, http.StatusCreated, "/app/estimates/"+est.ID, est)
}

func (h *Handler) ShowEstimate(c *gin.Context) {
	est, err := h.Store.GetEstimate(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		fail(c, err, nil)
		return
	}
	respond(c, http.StatusOK, "estimate_detail.html", gin.H{
		"Title":    "Estimate",
		"Nav":      "estimates",
		"estimate": est,
	}, est)
}

func (h *Handler) DeleteEstimate(c *gin.Context) {
	if !confirmed(c) {
		fail(c, errNotConfirmed, nil)
		return
	}
	if err := h.Store.DeleteEstimate(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		fail(c, err, nil)
		return
	}
	done(c, http.StatusNoContent, "/app/estimates", nil)
}
