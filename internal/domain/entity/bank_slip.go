package entity

import (
	"strconv"
	"strings"

	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
)

// bankSlipDigitGroups is how many random digits make up a ticket; each is repeated bankSlipRepeat times.
const (
	bankSlipDigitGroups = 4
	bankSlipRepeat      = 5
)

// NewBankSlipTicket fabricates a 20-digit bank slip number.
// It is a placeholder and carries no checksum or bank routing data.
func NewBankSlipTicket(random coreport.RandomSource) string {
	var b strings.Builder
	b.Grow(bankSlipDigitGroups * bankSlipRepeat)

	for i := 0; i < bankSlipDigitGroups; i++ {
		digit := strconv.Itoa(random.Intn(10))
		b.WriteString(strings.Repeat(digit, bankSlipRepeat))
	}

	return b.String()
}
