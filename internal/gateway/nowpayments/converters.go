package nowpayments

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"cryptoshop/internal/entities"
)

// priceCurrency - фиатная валюта, в которой номинированы заказы.
const priceCurrency = "usd"

type createPaymentRequest struct {
	PriceAmount      float64 `json:"price_amount"`
	PriceCurrency    string  `json:"price_currency"`
	PayCurrency      string  `json:"pay_currency"`
	OrderID          string  `json:"order_id"`
	OrderDescription string  `json:"order_description,omitempty"`
	IPNCallbackURL   string  `json:"ipn_callback_url,omitempty"`
}

// paymentResponse - ответ процессора на создание платежа и на запрос статуса.
// payment_id приходит то числом, то строкой, поэтому json.Number.
type paymentResponse struct {
	PaymentID     json.Number `json:"payment_id"`
	PaymentStatus string      `json:"payment_status"`
	PayAddress    string      `json:"pay_address"`
	PayAmount     float64     `json:"pay_amount"`
	PayCurrency   string      `json:"pay_currency"`
	PriceAmount   float64     `json:"price_amount"`
	ActuallyPaid  float64     `json:"actually_paid"`
}

func toCreatePaymentRequest(req entities.CreatePaymentRequest, callbackURL string) createPaymentRequest {
	return createPaymentRequest{
		PriceAmount:      req.Amount.InexactFloat64(),
		PriceCurrency:    priceCurrency,
		PayCurrency:      req.PayCurrency,
		OrderID:          req.OrderID,
		OrderDescription: req.Description,
		IPNCallbackURL:   callbackURL,
	}
}

func toPaymentIntent(resp *paymentResponse) (*entities.PaymentIntent, error) {
	if resp.PaymentID.String() == "" {
		return nil, fmt.Errorf("payment response without payment_id")
	}
	if resp.PayAddress == "" {
		return nil, fmt.Errorf("payment response without pay_address")
	}

	return &entities.PaymentIntent{
		PaymentID:     resp.PaymentID.String(),
		PayAddress:    resp.PayAddress,
		PayAmount:     decimal.NewFromFloat(resp.PayAmount),
		PayCurrency:   resp.PayCurrency,
		PaymentStatus: entities.PaymentStatusType(resp.PaymentStatus),
	}, nil
}

func toStatusCheck(resp *paymentResponse) (*entities.PaymentStatusCheck, error) {
	if resp.PaymentID.String() == "" {
		return nil, fmt.Errorf("payment response without payment_id")
	}

	return &entities.PaymentStatusCheck{
		PaymentID:     resp.PaymentID.String(),
		PaymentStatus: entities.PaymentStatusType(resp.PaymentStatus),
		PayAmount:     decimal.NewFromFloat(resp.PayAmount),
		ActuallyPaid:  decimal.NewFromFloat(resp.ActuallyPaid),
		PayCurrency:   resp.PayCurrency,
	}, nil
}
