package entity

import "fmt"

type TicketCategory int

const (
	Infant TicketCategory = iota
	Child
	Adult

	numCategories = iota
)

var categoryNames = [numCategories]string{
	Infant: "INFANT",
	Child:  "CHILD",
	Adult:  "ADULT",
}

func (c TicketCategory) String() string {
	if !c.Valid() {
		return fmt.Sprintf("TicketCategory(%d)", int(c))
	}
	return categoryNames[c]
}

func (c TicketCategory) Valid() bool {
	return c >= 0 && c < numCategories
}

func ParseTicketCategory(s string) (TicketCategory, error) {
	for i, name := range categoryNames {
		if name == s {
			return TicketCategory(i), nil
		}
	}
	return 0, fmt.Errorf("unknown ticket category %q", s)
}

func (c TicketCategory) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown ticket category %d", int(c))
	}
	return []byte(categoryNames[c]), nil
}

func (c *TicketCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseTicketCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// TicketRequest asks for a number of tickets of one category.
type TicketRequest struct {
	category        TicketCategory
	numberOfTickets int
}

func NewTicketRequest(category TicketCategory, numberOfTickets int) (TicketRequest, error) {
	if !category.Valid() {
		return TicketRequest{}, fmt.Errorf("unknown ticket category %d", int(category))
	}

	return TicketRequest{
		category:        category,
		numberOfTickets: numberOfTickets,
	}, nil
}

func (r TicketRequest) Category() TicketCategory {
	return r.category
}

func (r TicketRequest) NumberOfTickets() int {
	return r.numberOfTickets
}

// AccountID identifies the purchasing account. Valid ids are greater than zero.
type AccountID int64
