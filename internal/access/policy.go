// Package access decides whether a session may perform an action on a resource.
package access

import (
	"github.com/BruksfildServices01/hotel-services/internal/auth"
	"github.com/BruksfildServices01/hotel-services/internal/domain/role"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
)

type Action string

const (
	ReadService     Action = "service.read"
	CreateService   Action = "service.create"
	UpdateService   Action = "service.update"
	DeleteService   Action = "service.delete"
	CreateProvider  Action = "provider.create"
	UpdateProvider  Action = "provider.update"
	CreateBooking   Action = "booking.create"
	ReadBooking     Action = "booking.read"
	ConfirmBooking  Action = "booking.confirm"
	CancelBooking   Action = "booking.cancel"
	CompleteBooking Action = "booking.complete"
	SignIn          Action = "session.sign_in"
)

// Resource carries the ownership facts a rule needs. Zero values mean unknown.
type Resource struct {
	OwnerAccountID uint
	GuestAccountID uint
	RequestedRole  role.Role
}

const (
	ReasonUnauthenticated = "not_authenticated"
	ReasonRoleMismatch    = "role_mismatch"
	ReasonNotOwner        = "not_owner"
	ReasonGuestsOnly      = "guests_only"
	ReasonForbidden       = "forbidden"
)

type Decision struct {
	Allow  bool
	Reason string
	// Terminate asks the caller to revoke the session.
	Terminate bool
}

func allow() Decision { return Decision{Allow: true} }

func deny(reason string) Decision { return Decision{Reason: reason} }

// Err converts a denial into the error returned to callers; nil when allowed.
func (d Decision) Err() error {
	if d.Allow {
		return nil
	}
	switch d.Reason {
	case ReasonUnauthenticated, ReasonRoleMismatch:
		return httperr.ErrAuth(d.Reason)
	default:
		return httperr.ErrForbidden(d.Reason)
	}
}

// Authorize applies the rules in order; the first match wins.
func Authorize(sess *auth.Session, action Action, res Resource) Decision {
	if sess == nil {
		if action == ReadService {
			return allow()
		}
		return deny(ReasonUnauthenticated)
	}

	switch action {
	case SignIn:
		if res.RequestedRole != sess.Role {
			return Decision{Reason: ReasonRoleMismatch, Terminate: true}
		}
		return allow()

	case ReadService:
		return allow()

	case CreateProvider, UpdateProvider, CreateService, UpdateService, DeleteService:
		if res.OwnerAccountID != 0 && res.OwnerAccountID == sess.AccountID {
			return allow()
		}
		return deny(ReasonNotOwner)

	case CreateBooking:
		if sess.Role == role.Guest {
			return allow()
		}
		return deny(ReasonGuestsOnly)

	case ReadBooking:
		if isGuest(sess, res) {
			return allow()
		}
		return deny(ReasonNotOwner)

	case ConfirmBooking, CompleteBooking:
		if isProvider(sess, res) {
			return allow()
		}
		return deny(ReasonNotOwner)

	case CancelBooking:
		if isGuest(sess, res) || isProvider(sess, res) {
			return allow()
		}
		return deny(ReasonNotOwner)
	}

	return deny(ReasonForbidden)
}

func isGuest(sess *auth.Session, res Resource) bool {
	return res.GuestAccountID != 0 && res.GuestAccountID == sess.AccountID
}

func isProvider(sess *auth.Session, res Resource) bool {
	return sess.Role.IsProvider() && res.OwnerAccountID != 0 && res.OwnerAccountID == sess.AccountID
}
