package entity

import (
	"context"
)

type ExchangeName string

const (
	ExchangeBinanceFutures ExchangeName = "binance-futures"
)

// Exchange is the client capability every trading operation is forwarded to.
// Payloads are opaque: they are returned exactly as the wrapped client library
// produced them and callers never depend on their shape.
type Exchange interface {
	ServerTime(ctx context.Context) (int64, error)
	AccountInfo(ctx context.Context) (any, error)
	CreateOrder(ctx context.Context, order OrderRequest) (any, error)
	GetOrder(ctx context.Context, symbol string, orderID int64) (any, error)
	CancelOrder(ctx context.Context, symbol string, orderID int64) (any, error)
	AccountBalance(ctx context.Context) (any, error)
}
