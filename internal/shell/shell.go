package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/entity"
	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/service/trading"
	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/util"
)

// Shell drives the interactive menu loop: read one selector, collect the
// typed fields for the chosen operation, dispatch to the trading service and
// print the outcome.
type Shell struct {
	bot *trading.TradingService
	in  *bufio.Scanner
	out io.Writer
}

func New(bot *trading.TradingService, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		bot: bot,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run loops until the exit selector or end of input. Dispatch failures are
// already absorbed by the trading service; anything that still panics is
// logged as a warning and the loop continues.
func (s *Shell) Run(ctx context.Context) {
	for {
		choice, ok := s.promptMenu()
		if !ok {
			logrus.Info("input closed, shutting down")
			return
		}

		if choice == "7" {
			fmt.Fprintln(s.out, "Exiting bot...")
			logrus.Info("bot shutdown by user")
			return
		}

		s.dispatch(ctx, choice)
	}
}

func (s *Shell) dispatch(ctx context.Context, choice string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logrus.Warnf("unexpected error in main loop: %v", recovered)
			fmt.Fprintf(s.out, "An unexpected error occurred: %v\n", recovered)
		}
	}()

	switch choice {
	case "1":
		s.runMarketOrder(ctx)
	case "2":
		s.runLimitOrder(ctx)
	case "3":
		s.runStopLimitOrder(ctx)
	case "4":
		s.runOrderStatus(ctx)
	case "5":
		s.runCancelOrder(ctx)
	case "6":
		s.runAccountBalance(ctx)
	default:
		fmt.Fprintln(s.out, "Invalid choice. Please select 1-7")
	}
}

func (s *Shell) runMarketOrder(ctx context.Context) {
	symbol, ok := s.promptString("Enter symbol (e.g., BTCUSDT): ")
	if !ok {
		return
	}
	side, ok := s.promptSide()
	if !ok {
		return
	}
	quantity, ok := s.promptDecimal("Enter quantity: ")
	if !ok {
		return
	}

	s.printResult(s.bot.PlaceMarketOrder(ctx, symbol, side, quantity))
}

func (s *Shell) runLimitOrder(ctx context.Context) {
	symbol, ok := s.promptString("Enter symbol (e.g., BTCUSDT): ")
	if !ok {
		return
	}
	side, ok := s.promptSide()
	if !ok {
		return
	}
	quantity, ok := s.promptDecimal("Enter quantity: ")
	if !ok {
		return
	}
	price, ok := s.promptDecimal("Enter limit price: ")
	if !ok {
		return
	}

	s.printResult(s.bot.PlaceLimitOrder(ctx, symbol, side, quantity, price))
}

func (s *Shell) runStopLimitOrder(ctx context.Context) {
	symbol, ok := s.promptString("Enter symbol (e.g., BTCUSDT): ")
	if !ok {
		return
	}
	side, ok := s.promptSide()
	if !ok {
		return
	}
	quantity, ok := s.promptDecimal("Enter quantity: ")
	if !ok {
		return
	}
	stopPrice, ok := s.promptDecimal("Enter stop price: ")
	if !ok {
		return
	}
	limitPrice, ok := s.promptDecimal("Enter limit price: ")
	if !ok {
		return
	}

	s.printResult(s.bot.PlaceStopLimitOrder(ctx, symbol, side, quantity, stopPrice, limitPrice))
}

func (s *Shell) runOrderStatus(ctx context.Context) {
	symbol, ok := s.promptString("Enter symbol (e.g., BTCUSDT): ")
	if !ok {
		return
	}
	orderID, ok := s.promptInt("Enter order ID: ")
	if !ok {
		return
	}

	s.printResult(s.bot.GetOrderStatus(ctx, symbol, orderID))
}

func (s *Shell) runCancelOrder(ctx context.Context) {
	symbol, ok := s.promptString("Enter symbol (e.g., BTCUSDT): ")
	if !ok {
		return
	}
	orderID, ok := s.promptInt("Enter order ID: ")
	if !ok {
		return
	}

	s.printResult(s.bot.CancelOrder(ctx, symbol, orderID))
}

func (s *Shell) runAccountBalance(ctx context.Context) {
	s.printResult(s.bot.GetAccountBalance(ctx))
}

func (s *Shell) promptMenu() (string, bool) {
	line := strings.Repeat("=", 50)

	fmt.Fprintf(s.out, "\n%s\n", line)
	fmt.Fprintln(s.out, "BINANCE TESTNET TRADING BOT")
	fmt.Fprintln(s.out, line)
	fmt.Fprintln(s.out, "1. Place Market Order")
	fmt.Fprintln(s.out, "2. Place Limit Order")
	fmt.Fprintln(s.out, "3. Place Stop-Limit Order")
	fmt.Fprintln(s.out, "4. Check Order Status")
	fmt.Fprintln(s.out, "5. Cancel Order")
	fmt.Fprintln(s.out, "6. Check Account Balance")
	fmt.Fprintln(s.out, "7. Exit")
	fmt.Fprintln(s.out, line)

	return s.promptString("Enter your choice (1-7): ")
}

func (s *Shell) promptString(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)

	if !s.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(s.in.Text()), true
}

// promptSide normalizes the answer to upper case; BUY/SELL enforcement is the
// trading service's job.
func (s *Shell) promptSide() (entity.OrderSide, bool) {
	raw, ok := s.promptString("Enter side (BUY or SELL): ")
	if !ok {
		return "", false
	}

	return entity.OrderSide(strings.ToUpper(raw)), true
}

func (s *Shell) promptDecimal(prompt string) (decimal.Decimal, bool) {
	for {
		raw, ok := s.promptString(prompt)
		if !ok {
			return decimal.Zero, false
		}

		value, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a valid number.")
			continue
		}

		return value, true
	}
}

func (s *Shell) promptInt(prompt string) (int64, bool) {
	for {
		raw, ok := s.promptString(prompt)
		if !ok {
			return 0, false
		}

		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a valid integer.")
			continue
		}

		return value, true
	}
}

func (s *Shell) printResult(result entity.OrderResult) {
	var display any = result.Payload
	if !result.OK() {
		display = map[string]string{"error": result.Error}
	}

	fmt.Fprintf(s.out, "\nResult: %s\n", util.RenderIndent(display))
}
