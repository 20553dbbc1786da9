package purchase

import "github.com/NishadiGunasinghe/cinema-tickets/entity"

// RequestSummary holds the number of tickets requested per category.
// It is only built by Aggregate and cannot be changed afterwards.
type RequestSummary struct {
	counts map[entity.TicketCategory]int
	total  int
}

func Aggregate(requests []entity.TicketRequest) RequestSummary {
	s := RequestSummary{
		counts: make(map[entity.TicketCategory]int, len(entity.Categories())),
	}
	for _, c := range entity.Categories() {
		s.counts[c] = 0
	}

	for _, r := range requests {
		s.counts[r.Category()] += r.NumberOfTickets()
		s.total += r.NumberOfTickets()
	}

	return s
}

// Count returns the tickets requested for c, zero if none were.
func (s RequestSummary) Count(c entity.TicketCategory) int {
	return s.counts[c]
}

func (s RequestSummary) Total() int {
	return s.total
}
