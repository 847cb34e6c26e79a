package payment

import (
	"github.com/leoandrade/payment-api/internal/domain/entity"
	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
)

// CardAuthorizer decides whether a card charge is approved
type CardAuthorizer interface {
	Authorize(card *entity.CreditCard, amount int64) bool
}

// CoinFlipAuthorizer approves roughly half of all charges at random.
// No card network is contacted; it stands in for a real issuer.
type CoinFlipAuthorizer struct {
	random coreport.RandomSource
}

// NewCoinFlipAuthorizer creates a simulated authorizer
func NewCoinFlipAuthorizer(random coreport.RandomSource) *CoinFlipAuthorizer {
	return &CoinFlipAuthorizer{random: random}
}

// Authorize ignores the card and amount and flips a coin
func (a *CoinFlipAuthorizer) Authorize(_ *entity.CreditCard, _ int64) bool {
	return a.random.Intn(2) == 1
}
