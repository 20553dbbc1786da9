package purchase

import "github.com/NishadiGunasinghe/cinema-tickets/entity"

func Price(s RequestSummary) int {
	total := 0
	for _, c := range entity.Categories() {
		total += entity.TicketPrice(c) * s.Count(c)
	}
	return total
}
