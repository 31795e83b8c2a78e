package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWantsJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := map[string]bool{
		"":                                false,
		"application/json":                true,
		"text/html":                       false,
		"text/html,application/json":      false,
		"application/json; charset=utf-8": true,
		"*/*":                             false,
	}
	for accept, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Accept", accept)
		assert.Equal(t, want, WantsJSON(c), "accept %q", accept)
	}
}

func TestJSONError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	JSONError(c, http.StatusBadRequest, "invalid", map[string]string{"name": "required"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, c.IsAborted())
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid", body.Error)
	assert.Equal(t, map[string]any{"name": "required"}, body.Details)
}

func TestViolations(t *testing.T) {
	v := Violations{}
	v.Required("name", "  ")
	v.Required("email", "a@example.com")
	assert.False(t, v.Empty())
	assert.Equal(t, "Name is required", v.Error())

	v.Add("start_time", "invalid")
	assert.Equal(t, "Name is required, start time is invalid", v.Error())
	assert.Equal(t, "", Violations{}.Error())
}
