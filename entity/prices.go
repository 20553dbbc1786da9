package entity

// ticketPrices is indexed by category and never written after initialisation.
var ticketPrices = [numCategories]int{
	Infant: 0,
	Child:  15,
	Adult:  25,
}

// TicketPrice returns the unit price of a category. Unknown categories cost nothing.
func TicketPrice(c TicketCategory) int {
	if !c.Valid() {
		return 0
	}
	return ticketPrices[c]
}

// Categories lists every category in the price table.
func Categories() []TicketCategory {
	categories := make([]TicketCategory, 0, numCategories)
	for c := range ticketPrices {
		categories = append(categories, TicketCategory(c))
	}
	return categories
}
