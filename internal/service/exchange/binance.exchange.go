package exchange

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/adshao/go-binance/v2/common"
	"github.com/adshao/go-binance/v2/futures"
	"github.com/sirupsen/logrus"

	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/config"
	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/entity"
)

var binanceClientIDPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// BinanceFuturesExchange adapts the go-binance futures client to the
// entity.Exchange capability. It owns no state beyond the wrapped client;
// every call is one synchronous round-trip with the library's default timeout.
type BinanceFuturesExchange struct {
	client *futures.Client
	opts   []futures.RequestOption
}

func InitBinanceFuturesExchange(exchangeConfig config.ExchangeConfig) *BinanceFuturesExchange {
	futures.UseTestnet = exchangeConfig.Testnet

	client := futures.NewClient(
		strings.TrimSpace(exchangeConfig.APIKey),
		strings.TrimSpace(exchangeConfig.APISecret),
	)

	if baseURL := strings.TrimSpace(exchangeConfig.BaseURL); baseURL != "" {
		client.BaseURL = strings.TrimRight(baseURL, "/")
	}

	var opts []futures.RequestOption
	if exchangeConfig.RecvWindow > 0 {
		opts = append(opts, futures.WithRecvWindow(exchangeConfig.RecvWindow))
	}

	logrus.WithFields(logrus.Fields{
		"exchange":    entity.ExchangeBinanceFutures,
		"testnet":     exchangeConfig.Testnet,
		"base_url":    client.BaseURL,
		"recv_window": exchangeConfig.RecvWindow,
	}).Info("exchange client initialized")

	return &BinanceFuturesExchange{
		client: client,
		opts:   opts,
	}
}

func (e *BinanceFuturesExchange) ServerTime(ctx context.Context) (int64, error) {
	serverTime, err := e.client.NewServerTimeService().Do(ctx, e.opts...)
	if err != nil {
		return 0, wrapClientError(err)
	}

	return serverTime, nil
}

func (e *BinanceFuturesExchange) AccountInfo(ctx context.Context) (any, error) {
	account, err := e.client.NewGetAccountService().Do(ctx, e.opts...)
	if err != nil {
		return nil, wrapClientError(err)
	}

	return account, nil
}

func (e *BinanceFuturesExchange) CreateOrder(ctx context.Context, order entity.OrderRequest) (any, error) {
	if ctx.Err() != nil {
		return nil, &entity.TransportError{Err: ctx.Err()}
	}

	svc := e.client.NewCreateOrderService().
		Symbol(order.Symbol).
		Side(futures.SideType(order.Side)).
		Type(futures.OrderType(order.Type)).
		Quantity(order.Quantity.String())

	if order.ClientOrderID != "" {
		clientID, err := normalizeClientOrderID(order.ClientOrderID)
		if err != nil {
			return nil, err
		}
		svc = svc.NewClientOrderID(clientID)
	}

	switch order.Type {
	case entity.OrderTypeLimit:
		svc = svc.
			TimeInForce(futures.TimeInForceTypeGTC).
			Price(order.Price.String())
	case entity.OrderTypeStopLimit:
		svc = svc.
			TimeInForce(futures.TimeInForceTypeGTC).
			Price(order.Price.String()).
			StopPrice(order.StopPrice.String())
	}

	resp, err := svc.Do(ctx, e.opts...)
	if err != nil {
		return nil, wrapClientError(err)
	}

	return resp, nil
}

func (e *BinanceFuturesExchange) GetOrder(ctx context.Context, symbol string, orderID int64) (any, error) {
	order, err := e.client.NewGetOrderService().
		Symbol(symbol).
		OrderID(orderID).
		Do(ctx, e.opts...)
	if err != nil {
		return nil, wrapClientError(err)
	}

	return order, nil
}

func (e *BinanceFuturesExchange) CancelOrder(ctx context.Context, symbol string, orderID int64) (any, error) {
	resp, err := e.client.NewCancelOrderService().
		Symbol(symbol).
		OrderID(orderID).
		Do(ctx, e.opts...)
	if err != nil {
		return nil, wrapClientError(err)
	}

	return resp, nil
}

func (e *BinanceFuturesExchange) AccountBalance(ctx context.Context) (any, error) {
	balances, err := e.client.NewGetBalanceService().Do(ctx, e.opts...)
	if err != nil {
		return nil, wrapClientError(err)
	}

	return balances, nil
}

// wrapClientError maps client library failures onto the closed error union:
// exchange-reported API errors keep their code and message, everything else
// is a transport failure.
func wrapClientError(err error) error {
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		return &entity.ExchangeError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
		}
	}

	return &entity.TransportError{Err: err}
}

func normalizeClientOrderID(raw string) (string, error) {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, "-", "")

	if normalized == "" {
		return "", &entity.ValidationError{Field: "client order id", Reason: "empty"}
	}

	if len(normalized) > 32 {
		normalized = normalized[:32]
	}

	if !binanceClientIDPattern.MatchString(normalized) {
		return "", &entity.ValidationError{Field: "client order id", Reason: "contains unsupported characters"}
	}

	return normalized, nil
}
