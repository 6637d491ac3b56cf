package httperr

import "errors"

// Kind classifies a BusinessError for transport mapping.
type Kind string

const (
	KindBusiness    Kind = "business"
	KindValidation  Kind = "validation"
	KindAuth        Kind = "auth"
	KindForbidden   Kind = "forbidden"
	KindNotFound    Kind = "not_found"
	KindConflict    Kind = "conflict"
	KindUnavailable Kind = "unavailable"
)

type BusinessError struct {
	Kind  Kind
	Code  string
	Field string
}

func (e BusinessError) Error() string {
	if e.Field != "" {
		return e.Code + ": " + e.Field
	}
	return e.Code
}

// ErrBusiness is a rule violation such as an invalid state transition.
func ErrBusiness(code string) error {
	return BusinessError{Kind: KindBusiness, Code: code}
}

func ErrValidation(code, field string) error {
	return BusinessError{Kind: KindValidation, Code: code, Field: field}
}

func ErrAuth(code string) error {
	return BusinessError{Kind: KindAuth, Code: code}
}

func ErrForbidden(code string) error {
	return BusinessError{Kind: KindForbidden, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func ErrUnavailable(code string) error {
	return BusinessError{Kind: KindUnavailable, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func As(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
