package handlers

import (
	"net/http"
	"strings"

	"painterflow/internal/database"
	"painterflow/internal/httpx"
	"painterflow/internal/models"
	"painterflow/internal/pricing"
	"painterflow/internal/quotepdf"

	"github.com/gin-gonic/gin"
)

type quoteForm struct {
	EstimateID string         `form:"estimate_id" json:"estimate_id"`
	ValidDays  pricing.Amount `form:"valid_days" json:"valid_days"`
	TaxRate    pricing.Amount `form:"tax_rate" json:"tax_rate"`
	Notes      string         `form:"notes" json:"notes"`
	Terms      string         `form:"terms" json:"terms"`
}

func (f quoteForm) input() (database.QuoteInput, error) {
	v := httpx.Violations{}
	v.Required("estimate_id", f.EstimateID)
	if f.TaxRate < 0 {
		v.Add("tax_rate", "negative")
	}
	if !pricing.ValidDaysInRange(f.ValidDays.Float64()) {
		v.Add("valid_days", "out_of_range")
	}
	if !v.Empty() {
		return database.QuoteInput{}, v
	}
	return database.QuoteInput{
		EstimateID: strings.TrimSpace(f.EstimateID),
		ValidDays:  int(f.ValidDays),
		TaxRate:    f.TaxRate.Float64(),
		Notes:      strings.TrimSpace(f.Notes),
		Terms:      strings.TrimSpace(f.Terms),
	}, nil
}

// quoteDetail is the JSON shape of a single quote.
type quoteDetail struct {
	*models.Quote
	Items []models.EstimateItem `json:"items"`
}

func (h *Handler) ListQuotes(c *gin.Context) {
	h.quotesPage(c, http.StatusOK, "")
}

func (h *Handler) quotesPage(c *gin.Context, status int, errMsg string) {
	ctx := c.Request.Context()
	uid := userID(c)

	quotes, err := h.Store.ListQuotes(ctx, uid)
	if err != nil {
		fail(c, err, nil)
		return
	}
	if quotes == nil {
		quotes = []models.Quote{}
	}
	if httpx.WantsJSON(c) {
		c.JSON(status, quotes)
		return
	}

	estimates, err := h.Store.ListEstimates(ctx, uid)
	if err != nil {
		fail(c, err, nil)
		return
	}
	render(c, status, "quotes.html", gin.H{
		"Title":            "Quotes",
		"Nav":              "quotes",
		"quotes":           quotes,
		"estimates":        estimates,
		"statuses":         models.QuoteStatuses,
		"defaultDays":      pricing.DefaultValidDays,
		"maxDays":          pricing.MaxValidDays,
		"defaultTax":       pricing.DefaultTaxRate,
		"defaultTerms":     pricing.DefaultTerms,
		"selectedEstimate": c.Query("estimate_id"),
		"ShowForm":         errMsg != "" || c.Query("estimate_id") != "",
		"error":            errMsg,
	})
}

func (h *Handler) CreateQuote(c *gin.Context) {
	page := func(status int, msg string) { h.quotesPage(c, status, msg) }

	var form quoteForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, httpx.Violations{"form": "invalid"}, page)
		return
	}
	in, err := form.input()
	if err != nil {
		fail(c, err, page)
		return
	}
	q, err := h.Store.CreateQuote(c.Request.Context(), userID(c), in, h.Now())
	if err != nil {
		fail(c, err, page)
		return
	}
	done(c, http.StatusCreated, "/app/quotes/"+q.ID, q)
}

func (h *Handler) loadQuote(c *gin.Context) (*quoteDetail, bool) {
	ctx := c.Request.Context()
	uid := userID(c)

	q, err := h.Store.GetQuote(ctx, uid, c.Param("id"))
	if err != nil {
		fail(c, err, nil)
		return nil, false
	}
	items, err := h.Store.QuoteItems(ctx, uid, q)
	if err != nil {
		fail(c, err, nil)
		return nil, false
	}
	return &quoteDetail{Quote: q, Items: items}, true
}

func (h *Handler) ShowQuote(c *gin.Context) {
	d, ok := h.loadQuote(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, "quote_detail.html", gin.H{
		"Title":    "Quote",
		"Nav":      "quotes",
		"quote":    d.Quote,
		"items":    d.Items,
		"statuses": models.QuoteStatuses,
	}, d)
}

// UpdateQuoteStatus moves a quote to any of the four statuses.
func (h *Handler) UpdateQuoteStatus(c *gin.Context) {
	var form struct {
		Status string `form:"status" json:"status"`
	}
	if err := c.ShouldBind(&form); err != nil {
		fail(c, httpx.Violations{"status": "invalid"}, nil)
		return
	}
	id := c.Param("id")
	if err := h.Store.UpdateQuoteStatus(c.Request.Context(), userID(c), id, models.QuoteStatus(form.Status)); err != nil {
		fail(c, err, nil)
		return
	}
	done(c, http.StatusOK, "/app/quotes/"+id, gin.H{"id": id, "status": form.Status})
}

func (h *Handler) DeleteQuote(c *gin.Context) {
	if !confirmed(c) {
		fail(c, errNotConfirmed, nil)
		return
	}
	if err := h.Store.DeleteQuote(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		fail(c, err, nil)
		return
	}
	done(c, http.StatusNoContent, "/app/quotes", nil)
}

// QuotePDF streams the customer-facing document of a quote.
func (h *Handler) QuotePDF(c *gin.Context) {
	d, ok := h.loadQuote(c)
	if !ok {
		return
	}

	var customer string
	if d.Customer != nil {
		customer = d.Customer.Name
	}
	data, err := quotepdf.Render(quotepdf.Data{Quote: d.Quote, Items: d.Items, CustomerName: customer})
	if err != nil {
		fail(c, err, nil)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+quotepdf.Filename(d.Quote)+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
