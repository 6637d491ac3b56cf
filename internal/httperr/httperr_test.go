package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("create booking: %w", ErrValidation("past_date", "date"))

	if !IsBusiness(err, "past_date") {
		t.Error("Expected wrapped past_date to match")
	}
	if !IsKind(err, KindValidation) {
		t.Error("Expected validation kind")
	}
	if IsBusiness(errors.New("past_date"), "past_date") {
		t.Error("Plain errors are not business errors")
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrValidation("invalid_price", "price"), http.StatusBadRequest},
		{ErrBusiness("invalid_state"), http.StatusBadRequest},
		{ErrAuth("invalid_credentials"), http.StatusUnauthorized},
		{ErrAuth("role_mismatch"), http.StatusForbidden},
		{ErrForbidden("not_owner"), http.StatusForbidden},
		{ErrNotFound("service_not_found"), http.StatusNotFound},
		{ErrConflict("provider_already_exists"), http.StatusConflict},
		{ErrUnavailable("media_disabled"), http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		be, _ := As(tc.err)
		if got := StatusFor(be); got != tc.want {
			t.Errorf("%s: expected %d, got %d", be.Code, tc.want, got)
		}
	}
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Respond(c, ErrValidation("invalid_duration", "duration"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}

	var body HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Code != "invalid_duration" || body.Field != "duration" {
		t.Errorf("Unexpected body %+v", body)
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Respond(c, errors.New("boom"))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", w.Code)
	}
	body = HTTPError{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Code != "internal_error" || body.Message == "" {
		t.Errorf("Unexpected body %+v", body)
	}
}
