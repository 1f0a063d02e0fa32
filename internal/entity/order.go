package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderType string
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"

	OrderTypeMarket OrderType = "MARKET"
	OrderTypeLimit  OrderType = "LIMIT"
	// OrderTypeStopLimit converts to a limit order once the stop price is hit.
	// The futures API calls this order type STOP.
	OrderTypeStopLimit OrderType = "STOP"
)

// OrderRequest carries the user-entered parameters for a single order. It is
// built from shell input, consumed by one exchange call and discarded.
type OrderRequest struct {
	Symbol        string
	Type          OrderType
	Side          OrderSide
	Quantity      decimal.Decimal
	Price         decimal.Decimal // limit price (LIMIT and STOP)
	StopPrice     decimal.Decimal // trigger price (STOP only)
	ClientOrderID string
}

// OrderResult is the uniform outcome of every trading operation: the exchange
// payload forwarded verbatim or an error message, never both.
type OrderResult struct {
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

func NewSuccessResult(payload any) OrderResult {
	return OrderResult{Payload: payload}
}

func NewErrorResult(err error) OrderResult {
	return OrderResult{Error: err.Error()}
}

func (r OrderResult) OK() bool {
	return r.Error == ""
}

// NewClientOrderID produces an exchange-safe client order id: dashes stripped,
// at most 32 chars, matching [A-Za-z0-9_].
func NewClientOrderID() string {
	id := "bot_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	if len(id) > 32 {
		id = id[:32]
	}

	return id
}
