package trading

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/entity"
	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/util"
)

// TradingService fronts the exchange client: it validates order parameters,
// forwards each operation and converts every failure into an OrderResult, so
// no error propagates past this boundary.
type TradingService struct {
	exchange entity.Exchange
}

// NewTradingService verifies exchange reachability and API-key permission
// scope before returning a usable service. A permission-denied account check
// yields entity.ErrTradingPermission; construction failure is fatal for the
// caller, not recoverable in place.
func NewTradingService(ctx context.Context, exchange entity.Exchange) (*TradingService, error) {
	serverTime, err := exchange.ServerTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reach exchange: %w", err)
	}

	logrus.WithField("server_time", serverTime).Info("exchange connection verified")

	if _, err := exchange.AccountInfo(ctx); err != nil {
		if entity.IsPermissionDenied(err) {
			return nil, fmt.Errorf("%w: %v", entity.ErrTradingPermission, err)
		}

		return nil, fmt.Errorf("failed to verify account permissions: %w", err)
	}

	logrus.Info("api key has futures trading permission")

	return &TradingService{
		exchange: exchange,
	}, nil
}

func (s *TradingService) PlaceMarketOrder(ctx context.Context, symbol string, side entity.OrderSide, quantity decimal.Decimal) entity.OrderResult {
	return s.placeOrder(ctx, entity.OrderRequest{
		Symbol:   symbol,
		Type:     entity.OrderTypeMarket,
		Side:     side,
		Quantity: quantity,
	})
}

func (s *TradingService) PlaceLimitOrder(ctx context.Context, symbol string, side entity.OrderSide, quantity, price decimal.Decimal) entity.OrderResult {
	return s.placeOrder(ctx, entity.OrderRequest{
		Symbol:   symbol,
		Type:     entity.OrderTypeLimit,
		Side:     side,
		Quantity: quantity,
		Price:    price,
	})
}

func (s *TradingService) PlaceStopLimitOrder(ctx context.Context, symbol string, side entity.OrderSide, quantity, stopPrice, limitPrice decimal.Decimal) entity.OrderResult {
	return s.placeOrder(ctx, entity.OrderRequest{
		Symbol:    symbol,
		Type:      entity.OrderTypeStopLimit,
		Side:      side,
		Quantity:  quantity,
		Price:     limitPrice,
		StopPrice: stopPrice,
	})
}

func (s *TradingService) placeOrder(ctx context.Context, order entity.OrderRequest) entity.OrderResult {
	logger := logrus.WithFields(logrus.Fields{
		"symbol":   order.Symbol,
		"type":     order.Type,
		"side":     order.Side,
		"quantity": order.Quantity.String(),
	})
	if !order.Price.IsZero() {
		logger = logger.WithField("price", order.Price.String())
	}
	if !order.StopPrice.IsZero() {
		logger = logger.WithField("stop_price", order.StopPrice.String())
	}

	logger.Infof("placing %s order", order.Type)

	if err := validateOrder(order); err != nil {
		logger.Error(err)
		return entity.NewErrorResult(err)
	}

	order.ClientOrderID = entity.NewClientOrderID()

	payload, err := s.exchange.CreateOrder(ctx, order)
	if err != nil {
		logger.Error(err)
		return entity.NewErrorResult(err)
	}

	logger.WithField("response", util.RenderCompact(payload)).Info("order placed")

	return entity.NewSuccessResult(payload)
}

func (s *TradingService) GetOrderStatus(ctx context.Context, symbol string, orderID int64) entity.OrderResult {
	logger := logrus.WithFields(logrus.Fields{
		"symbol":   symbol,
		"order_id": orderID,
	})

	logger.Info("getting order status")

	payload, err := s.exchange.GetOrder(ctx, symbol, orderID)
	if err != nil {
		logger.Error(err)
		return entity.NewErrorResult(err)
	}

	logger.WithField("response", util.RenderCompact(payload)).Info("order status fetched")

	return entity.NewSuccessResult(payload)
}

func (s *TradingService) CancelOrder(ctx context.Context, symbol string, orderID int64) entity.OrderResult {
	logger := logrus.WithFields(logrus.Fields{
		"symbol":   symbol,
		"order_id": orderID,
	})

	logger.Info("cancelling order")

	payload, err := s.exchange.CancelOrder(ctx, symbol, orderID)
	if err != nil {
		logger.Error(err)
		return entity.NewErrorResult(err)
	}

	logger.WithField("response", util.RenderCompact(payload)).Info("order cancelled")

	return entity.NewSuccessResult(payload)
}

func (s *TradingService) GetAccountBalance(ctx context.Context) entity.OrderResult {
	logrus.Info("getting account balance")

	payload, err := s.exchange.AccountBalance(ctx)
	if err != nil {
		logrus.Error(err)
		return entity.NewErrorResult(err)
	}

	return entity.NewSuccessResult(payload)
}

func validateOrder(order entity.OrderRequest) error {
	if order.Symbol == "" {
		return &entity.ValidationError{Field: "symbol", Reason: "empty"}
	}

	if order.Side != entity.OrderSideBuy && order.Side != entity.OrderSideSell {
		return &entity.ValidationError{Field: "side", Reason: fmt.Sprintf("must be %s or %s", entity.OrderSideBuy, entity.OrderSideSell)}
	}

	if !order.Quantity.GreaterThan(decimal.Zero) {
		return &entity.ValidationError{Field: "quantity", Reason: "must be greater than zero"}
	}

	switch order.Type {
	case entity.OrderTypeLimit:
		if !order.Price.GreaterThan(decimal.Zero) {
			return &entity.ValidationError{Field: "price", Reason: "must be greater than zero"}
		}
	case entity.OrderTypeStopLimit:
		if !order.Price.GreaterThan(decimal.Zero) {
			return &entity.ValidationError{Field: "limit price", Reason: "must be greater than zero"}
		}
		if !order.StopPrice.GreaterThan(decimal.Zero) {
			return &entity.ValidationError{Field: "stop price", Reason: "must be greater than zero"}
		}
	}

	return nil
}
