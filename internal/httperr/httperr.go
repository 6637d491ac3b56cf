package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

var kindStatus = map[Kind]int{
	KindBusiness:    http.StatusBadRequest,
	KindValidation:  http.StatusBadRequest,
	KindAuth:        http.StatusUnauthorized,
	KindForbidden:   http.StatusForbidden,
	KindNotFound:    http.StatusNotFound,
	KindConflict:    http.StatusConflict,
	KindUnavailable: http.StatusServiceUnavailable,
}

// codes whose status differs from their kind
var codeStatus = map[string]int{
	"role_mismatch": http.StatusForbidden,
}

var messages = map[string]string{
	"invalid_request":              "Invalid request.",
	"invalid_role":                 "Role must be guest, hotel or vendor.",
	"invalid_provider_kind":        "Provider kind must be hotel or vendor.",
	"invalid_email":                "Email address is not valid.",
	"invalid_email_domain":         "The email domain does not look valid.",
	"weak_password":                "Password must have at least 6 characters.",
	"email_already_registered":     "An account with this email already exists.",
	"invalid_credentials":          "Invalid email or password.",
	"role_mismatch":                "Selected role does not match the registered role.",
	"not_authenticated":            "Authentication required.",
	"session_expired":              "Session is no longer valid.",
	"forbidden":                    "You are not allowed to perform this action.",
	"not_owner":                    "You do not own this resource.",
	"guests_only":                  "Only guests can book services.",
	"account_not_found":            "Account not found.",
	"provider_not_found":           "Provider not found.",
	"provider_already_exists":      "A provider already exists for this account.",
	"service_not_found":            "Service not found.",
	"booking_not_found":            "Booking not found.",
	"name_required":                "Name is required.",
	"invalid_price":                "Price must be zero or positive.",
	"invalid_duration":             "Duration must be a positive number of minutes.",
	"invalid_date":                 "Date must use the YYYY-MM-DD format.",
	"invalid_time":                 "Time must use the HH:MM format.",
	"past_date":                    "Bookings cannot be made for past dates.",
	"invalid_state":                "The booking cannot move to that status.",
	"service_has_active_bookings":  "The service still has pending or confirmed bookings.",
	"provider_has_active_bookings": "Your services still have pending or confirmed bookings.",
	"invalid_image":                "The uploaded file is not a supported image.",
	"media_disabled":               "Image uploads are not configured.",
}

func StatusFor(be BusinessError) int {
	if s, ok := codeStatus[be.Code]; ok {
		return s
	}
	if s, ok := kindStatus[be.Kind]; ok {
		return s
	}
	return http.StatusBadRequest
}

func MessageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}

// Respond writes err as a JSON error; unknown errors are logged and become 500.
func Respond(c *gin.Context, err error) {
	be, ok := As(err)
	if !ok {
		logrus.WithError(err).
			WithField("path", c.FullPath()).
			Error("unhandled error")
		c.JSON(http.StatusInternalServerError, HTTPError{
			Code:    "internal_error",
			Message: "Unexpected error.",
		})
		return
	}

	c.JSON(StatusFor(be), HTTPError{
		Code:    be.Code,
		Message: MessageFor(be.Code),
		Field:   be.Field,
	})
}
