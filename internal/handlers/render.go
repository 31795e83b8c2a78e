package handlers

import (
	"errors"
	"log"
	"net/http"

	"painterflow/internal/auth"
	"painterflow/internal/database"
	"painterflow/internal/httpx"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and passes the signed-in account to every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	for _, k := range []string{"error", "Nav", "Title"} {
		if _, ok := data[k]; !ok {
			data[k] = ""
		}
	}

	if s, ok := auth.FromContext(c); ok {
		data["IsAuthed"] = true
		data["CurrentUserEmail"] = s.Email
	}

	c.HTML(status, tmpl, data)
}

// respond answers JSON clients with payload and browsers with the page.
func respond(c *gin.Context, status int, tmpl string, data gin.H, payload any) {
	if httpx.WantsJSON(c) {
		c.JSON(status, payload)
		return
	}
	render(c, status, tmpl, data)
}

// done finishes a successful write: JSON clients get payload, browsers are
// redirected so a reload does not resubmit.
func done(c *gin.Context, status int, location string, payload any) {
	if httpx.WantsJSON(c) {
		if payload == nil {
			c.Status(status)
			return
		}
		c.JSON(status, payload)
		return
	}
	c.Redirect(http.StatusSeeOther, location)
}

func statusFor(err error) int {
	var v httpx.Violations
	switch {
	case errors.As(err, &v):
		return http.StatusBadRequest
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, database.ErrDuplicate), errors.Is(err, auth.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, database.ErrInvalidCustomer),
		errors.Is(err, database.ErrInvalidEstimate),
		errors.Is(err, database.ErrNoItems),
		errors.Is(err, database.ErrInvalidStatus),
		errors.Is(err, database.ErrInvalidTimeRange),
		errors.Is(err, database.ErrInvalidValidity),
		errors.Is(err, errNotConfirmed),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrNotConfirmed):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

var errNotConfirmed = errors.New("deletion not confirmed")

// fail reports err to the client. Browsers get page re-rendered with the
// message when page is set, plain text otherwise.
func fail(c *gin.Context, err error, page func(status int, msg string)) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		msg = "something went wrong, please try again"
	}

	if httpx.WantsJSON(c) {
		var details any
		var v httpx.Violations
		if errors.As(err, &v) {
			msg, details = "validation failed", v
		}
		httpx.JSONError(c, status, msg, details)
		return
	}
	if page == nil || status == http.StatusNotFound {
		c.String(status, msg)
		return
	}
	page(status, msg)
}

// confirmed reports whether a delete carries the explicit confirm=yes.
func confirmed(c *gin.Context) bool {
	return c.PostForm("confirm") == "yes" || c.Query("confirm") == "yes"
}
