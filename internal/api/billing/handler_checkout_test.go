package billing

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"directory-app/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCheckoutRouter(operatorID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/billing/checkout", func(c *gin.Context) {
		if operatorID != 0 {
			c.Set("operator_id", operatorID)
		}
		CreateCheckoutSession(c)
	})
	return r
}

func postJSON(r *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutRejectsUnauthenticated(t *testing.T) {
	r := newCheckoutRouter(0)

	w := postJSON(r, "/billing/checkout", `{"tier":"pro","billing_period":"monthly"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutRejectsMissingFields(t *testing.T) {
	r := newCheckoutRouter(7)

	w := postJSON(r, "/billing/checkout", `{"tier":"pro"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/billing/checkout", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Free cannot be checked out into, and unknown tiers/periods are invalid
// plans. Validation runs before any store write or provider call, so no
// billing customer may be created on this path.
func TestCheckoutRejectsInvalidPlan(t *testing.T) {
	r := newCheckoutRouter(7)

	for _, body := range []string{
		`{"tier":"free","billing_period":"monthly"}`,
		`{"tier":"premium","billing_period":"monthly"}`,
		`{"tier":"pro","billing_period":"weekly"}`,
	} {
		w := postJSON(r, "/billing/checkout", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Contains(t, w.Body.String(), "Invalid tier or billing period")
	}
}

// A valid (tier, period) pair with no configured price id is still an
// invalid plan, not a fallback to some other price.
func TestCheckoutRejectsUnmappedPrice(t *testing.T) {
	config.STRIPE_PRICE_PRO_MONTHLY = ""
	config.STRIPE_PRICE_PRO_ANNUAL = ""
	config.STRIPE_PRICE_BASIC_MONTHLY = ""
	config.STRIPE_PRICE_BASIC_ANNUAL = ""

	r := newCheckoutRouter(7)

	w := postJSON(r, "/billing/checkout", `{"tier":"pro","billing_period":"monthly"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid tier or billing period")
}
