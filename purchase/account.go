package purchase

import (
	"encoding/json"
	"math"

	"github.com/NishadiGunasinghe/cinema-tickets/entity"
)

func ValidateAccountID(accountID entity.AccountID) error {
	if accountID <= 0 {
		return ErrInvalidAccountID
	}
	return nil
}

// ParseAccountID accepts a loosely typed value, as decoded from JSON or a form,
// and returns it as an AccountID if it is a positive integer.
// Strings are rejected even when they hold digits.
func ParseAccountID(v any) (entity.AccountID, error) {
	var id entity.AccountID

	switch n := v.(type) {
	case int:
		id = entity.AccountID(n)
	case int8:
		id = entity.AccountID(n)
	case int16:
		id = entity.AccountID(n)
	case int32:
		id = entity.AccountID(n)
	case int64:
		id = entity.AccountID(n)
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, ErrInvalidAccountID
		}
		id = entity.AccountID(n)
	case uint8:
		id = entity.AccountID(n)
	case uint16:
		id = entity.AccountID(n)
	case uint32:
		id = entity.AccountID(n)
	case uint64:
		if n > math.MaxInt64 {
			return 0, ErrInvalidAccountID
		}
		id = entity.AccountID(n)
	case float32:
		return accountIDFromFloat(float64(n))
	case float64:
		return accountIDFromFloat(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			id = entity.AccountID(i)
			break
		}
		f, err := n.Float64()
		if err != nil {
			return 0, ErrInvalidAccountID
		}
		return accountIDFromFloat(f)
	default:
		return 0, ErrInvalidAccountID
	}

	if err := ValidateAccountID(id); err != nil {
		return 0, err
	}
	return id, nil
}

func accountIDFromFloat(f float64) (entity.AccountID, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, ErrInvalidAccountID
	}
	if f <= 0 || f >= math.MaxInt64 {
		return 0, ErrInvalidAccountID
	}
	return entity.AccountID(f), nil
}
