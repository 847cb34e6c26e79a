package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/leoandrade/payment-api/internal/domain/entity"
	domainerr "github.com/leoandrade/payment-api/internal/domain/error"
	"github.com/leoandrade/payment-api/internal/domain/port/usecase"
	usecasemocks "github.com/leoandrade/payment-api/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	outcomes []string
}

func (r *recordingObserver) ObservePayment(method, outcome string) {
	r.outcomes = append(r.outcomes, fmt.Sprintf("%s/%s", method, outcome))
}

func paymentRouter(t *testing.T, actor *entity.User) (*gin.Engine, *usecasemocks.MockPaymentUseCase, *recordingObserver) {
	t.Helper()

	uc := usecasemocks.NewMockPaymentUseCase(t)
	observer := &recordingObserver{}
	h := NewPaymentHandler(uc, observer, testLogger)

	router := gin.New()
	group := router.Group("/payment", as(actor))
	group.GET("", h.ListPayments)
	group.POST("", h.CreatePayment)
	group.GET("/:id", h.GetPayment)
	group.DELETE("/:id", h.DeletePayment)

	return router, uc, observer
}

func cardBody() map[string]any {
	return map[string]any{
		"name":           "Bob",
		"email":          "bob@example.com",
		"cpf":            "12345678901",
		"amount":         4990,
		"payment_method": 1,
		"name_card":      "BOB B",
		"num_card":       "4111111111111111",
		"expiration":     "12/27",
		"cvv":            123,
	}
}

func TestListPayments(t *testing.T) {
	router, uc, _ := paymentRouter(t, regular)
	uc.EXPECT().ListPayments(mock.Anything, regular).Return([]*entity.Payment{
		{ID: 1, OwnerID: 2, PayerName: "Bob", Amount: 100, Method: entity.PaymentMethodBankSlip},
		{ID: 2, OwnerID: 2, PayerName: "Bob", Amount: 200, Method: entity.PaymentMethodCreditCard,
			Card: &entity.CreditCard{HolderName: "BOB", Number: "4111", Expiration: "01/30", CVV: 321}},
	}, nil).Once()

	w := do(router, http.MethodGet, "/payment", nil)

	require.Equal(t, http.StatusOK, w.Code)
	payments := decode(t, w)["payments"].([]any)
	require.Len(t, payments, 2)

	slip := payments[0].(map[string]any)
	assert.Equal(t, "boleto", slip["payment_method"])
	assert.NotContains(t, slip, "credit_card")

	card := payments[1].(map[string]any)
	assert.Equal(t, "credit card", card["payment_method"])
	assert.Equal(t, float64(2), card["user_id"])
	assert.Equal(t, map[string]any{
		"name_card":  "BOB",
		"num_card":   "4111",
		"expiration": "01/30",
		"cvv":        float64(321),
	}, card["credit_card"])
}

func TestGetPayment(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		router, uc, _ := paymentRouter(t, regular)
		uc.EXPECT().GetPayment(mock.Anything, regular, uint64(5)).
			Return(&entity.Payment{ID: 5, OwnerID: 2, Method: entity.PaymentMethodBankSlip}, nil).Once()

		w := do(router, http.MethodGet, "/payment/5", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(5), decode(t, w)["payment"].(map[string]any)["payment_id"])
	})

	t.Run("Not visible", func(t *testing.T) {
		router, uc, _ := paymentRouter(t, regular)
		uc.EXPECT().GetPayment(mock.Anything, regular, uint64(6)).Return(nil, domainerr.ErrPaymentNotFound).Once()

		w := do(router, http.MethodGet, "/payment/6", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No payment found!", decode(t, w)["message"])
	})

	t.Run("Non-numeric id answers like a missing payment", func(t *testing.T) {
		router, _, _ := paymentRouter(t, regular)

		w := do(router, http.MethodGet, "/payment/abc", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No payment found!", decode(t, w)["message"])
	})
}

func TestCreatePayment(t *testing.T) {
	t.Run("Bank slip returns only the ticket", func(t *testing.T) {
		router, uc, observer := paymentRouter(t, regular)
		body := cardBody()
		body["payment_method"] = 0
		body["user_id"] = 99

		uc.EXPECT().CreatePayment(mock.Anything, regular, mock.MatchedBy(func(req usecase.CreatePaymentRequest) bool {
			return req.Method == 0 && req.Amount == 4990 && req.PayerCPF == "12345678901"
		})).Return(&usecase.PaymentResult{
			Payment: &entity.Payment{ID: 1, OwnerID: 2},
			Ticket:  "11111222223333344444",
		}, nil).Once()

		w := do(router, http.MethodPost, "/payment", body)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ticket":"11111222223333344444"}`, w.Body.String())
		assert.Equal(t, []string{"boleto/created"}, observer.outcomes)
	})

	t.Run("Approved card", func(t *testing.T) {
		router, uc, observer := paymentRouter(t, regular)
		uc.EXPECT().CreatePayment(mock.Anything, regular, mock.MatchedBy(func(req usecase.CreatePaymentRequest) bool {
			return req.Card != nil && req.Card.CVV == 123 && req.Card.Number == "4111111111111111"
		})).Return(&usecase.PaymentResult{Payment: &entity.Payment{ID: 2}}, nil).Once()

		w := do(router, http.MethodPost, "/payment", cardBody())

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Successful payment!"}`, w.Body.String())
		assert.Equal(t, []string{"credit card/created"}, observer.outcomes)
	})

	t.Run("Declined card", func(t *testing.T) {
		router, uc, observer := paymentRouter(t, regular)
		uc.EXPECT().CreatePayment(mock.Anything, regular, mock.Anything).Return(nil, domainerr.ErrPaymentDeclined).Once()

		w := do(router, http.MethodPost, "/payment", cardBody())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Unsuccessful payment... Please, enter a valid card!", decode(t, w)["message"])
		assert.Equal(t, []string{"credit card/declined"}, observer.outcomes)
	})

	t.Run("Unknown method", func(t *testing.T) {
		router, uc, observer := paymentRouter(t, regular)
		body := cardBody()
		body["payment_method"] = 7
		uc.EXPECT().CreatePayment(mock.Anything, regular, mock.Anything).Return(nil, domainerr.ErrInvalidPaymentMethod).Once()

		w := do(router, http.MethodPost, "/payment", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid payment method!", decode(t, w)["message"])
		assert.Equal(t, []string{"unknown/rejected"}, observer.outcomes)
	})

	t.Run("Partial card data is not forwarded", func(t *testing.T) {
		router, uc, _ := paymentRouter(t, regular)
		body := cardBody()
		delete(body, "cvv")
		uc.EXPECT().CreatePayment(mock.Anything, regular, mock.MatchedBy(func(req usecase.CreatePaymentRequest) bool {
			return req.Card == nil
		})).Return(nil, domainerr.ErrMissingCardData).Once()

		w := do(router, http.MethodPost, "/payment", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing payment method", func(t *testing.T) {
		router, _, observer := paymentRouter(t, regular)
		body := cardBody()
		delete(body, "payment_method")

		w := do(router, http.MethodPost, "/payment", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, observer.outcomes)
	})
}

func TestDeletePayment(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		router, uc, _ := paymentRouter(t, admin)
		uc.EXPECT().DeletePayment(mock.Anything, admin, uint64(3)).Return(nil).Once()

		w := do(router, http.MethodDelete, "/payment/3", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"The payment has been deleted!"}`, w.Body.String())
	})

	t.Run("Not visible", func(t *testing.T) {
		router, uc, _ := paymentRouter(t, regular)
		uc.EXPECT().DeletePayment(mock.Anything, regular, uint64(3)).Return(domainerr.ErrPaymentNotFound).Once()

		w := do(router, http.MethodDelete, "/payment/3", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
