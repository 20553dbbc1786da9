package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/NishadiGunasinghe/cinema-tickets/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketCategory_JSON(t *testing.T) {
	var got struct {
		Type entity.TicketCategory `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"type":"CHILD"}`), &got))
	assert.Equal(t, entity.Child, got.Type)

	err := json.Unmarshal([]byte(`{"type":"SENIOR"}`), &got)
	assert.Error(t, err)

	b, err := json.Marshal(entity.Infant)
	require.NoError(t, err)
	assert.Equal(t, `"INFANT"`, string(b))
}

func TestTicketCategory_String(t *testing.T) {
	assert.Equal(t, "ADULT", entity.Adult.String())
	assert.Equal(t, "TicketCategory(9)", entity.TicketCategory(9).String())
	assert.False(t, entity.TicketCategory(-1).Valid())
}

func TestNewTicketRequest(t *testing.T) {
	r, err := entity.NewTicketRequest(entity.Child, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.Child, r.Category())
	assert.Equal(t, 3, r.NumberOfTickets())

	for _, c := range []entity.TicketCategory{-1, 3, 9} {
		_, err := entity.NewTicketRequest(c, 5)
		assert.Error(t, err, "category %d", int(c))
	}
}

func TestTicketPrices(t *testing.T) {
	assert.Equal(t, 0, entity.TicketPrice(entity.Infant))
	assert.Equal(t, 15, entity.TicketPrice(entity.Child))
	assert.Equal(t, 25, entity.TicketPrice(entity.Adult))
	assert.Equal(t, 0, entity.TicketPrice(entity.TicketCategory(9)))

	assert.ElementsMatch(t, []entity.TicketCategory{entity.Infant, entity.Child, entity.Adult}, entity.Categories())
}
