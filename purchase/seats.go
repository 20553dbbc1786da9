package purchase

import "github.com/NishadiGunasinghe/cinema-tickets/entity"

// Seats counts adults and children. Infants sit on an adult's lap.
func Seats(s RequestSummary) int {
	return s.Count(entity.Adult) + s.Count(entity.Child)
}
