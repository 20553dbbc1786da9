package purchase

import "github.com/NishadiGunasinghe/cinema-tickets/entity"

const MaxTicketsPerPurchase = 25

// ValidateSummary returns the first rule the summary breaks. The ticket limit is
// checked before the adult rule, so 26 child tickets exceed the limit.
func ValidateSummary(s RequestSummary) error {
	if s.Total() == 0 {
		return ErrNoTicketsRequested
	}

	if s.Total() > MaxTicketsPerPurchase {
		return ErrTicketLimitExceeded
	}

	if s.Count(entity.Adult) == 0 && (s.Count(entity.Child) > 0 || s.Count(entity.Infant) > 0) {
		return ErrAdultRequired
	}

	return nil
}
