package purchase

import "errors"

type Kind int

const (
	KindInvalidAccountID Kind = iota + 1
	KindNoTicketsRequested
	KindTicketLimitExceeded
	KindAdultRequired
)

func (k Kind) String() string {
	switch k {
	case KindInvalidAccountID:
		return "InvalidAccountId"
	case KindNoTicketsRequested:
		return "NoTicketsRequested"
	case KindTicketLimitExceeded:
		return "TicketLimitExceeded"
	case KindAdultRequired:
		return "AdultRequired"
	default:
		return "PurchaseRejected"
	}
}

// PurchaseError rejects a whole purchase. Kind tells which rule was broken.
type PurchaseError struct {
	Kind Kind
}

var (
	ErrInvalidAccountID    = &PurchaseError{Kind: KindInvalidAccountID}
	ErrNoTicketsRequested  = &PurchaseError{Kind: KindNoTicketsRequested}
	ErrTicketLimitExceeded = &PurchaseError{Kind: KindTicketLimitExceeded}
	ErrAdultRequired       = &PurchaseError{Kind: KindAdultRequired}
)

func (e *PurchaseError) Error() string {
	switch e.Kind {
	case KindInvalidAccountID:
		return "invalid account id"
	case KindNoTicketsRequested:
		return "at least one ticket must be purchased"
	case KindTicketLimitExceeded:
		return "maximum number of tickets per purchase exceeded"
	case KindAdultRequired:
		return "child and infant tickets require at least one adult ticket"
	default:
		return "purchase rejected"
	}
}

// Is matches any PurchaseError of the same kind.
func (e *PurchaseError) Is(target error) bool {
	t, ok := target.(*PurchaseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// IsRejected reports whether err is a purchase rejection of any kind.
func IsRejected(err error) bool {
	var purchaseErr *PurchaseError
	return errors.As(err, &purchaseErr)
}
