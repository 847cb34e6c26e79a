package entity

import (
	"regexp"
	"testing"

	coremocks "github.com/leoandrade/payment-api/mocks/port/core"
	"github.com/stretchr/testify/assert"
)

func TestNewBankSlipTicket(t *testing.T) {
	t.Run("Each digit is repeated five times", func(t *testing.T) {
		random := coremocks.NewMockRandomSource(t)
		random.EXPECT().Intn(10).Return(9).Once()
		random.EXPECT().Intn(10).Return(0).Once()
		random.EXPECT().Intn(10).Return(7).Once()
		random.EXPECT().Intn(10).Return(2).Once()

		assert.Equal(t, "99999000007777722222", NewBankSlipTicket(random))
	})

	t.Run("Ticket is twenty digits", func(t *testing.T) {
		random := coremocks.NewMockRandomSource(t)
		random.EXPECT().Intn(10).Return(5).Times(4)

		ticket := NewBankSlipTicket(random)
		assert.Regexp(t, regexp.MustCompile(`^[0-9]{20}$`), ticket)
	})
}
