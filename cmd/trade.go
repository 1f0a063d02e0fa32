package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/config"
	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/service/exchange"
	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/service/trading"
	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/shell"
	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/util"
)

// tradeCmd runs the interactive trading menu.
var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Run the interactive trading menu",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		err := config.Env.Exchange.ValidateCredentials()
		if err != nil {
			printCredentialGuidance(out)
		}
		util.ContinueOrFatal(err)

		ctx := context.Background()

		binanceExchange := exchange.InitBinanceFuturesExchange(config.Env.Exchange)

		bot, err := trading.NewTradingService(ctx, binanceExchange)
		if err != nil {
			printConnectivityGuidance(out)
		}
		util.ContinueOrFatal(err)

		logrus.WithField("testnet", config.Env.Exchange.Testnet).Info("bot initialized successfully")

		shell.New(bot, cmd.InOrStdin(), out).Run(ctx)
	},
}

func printCredentialGuidance(out io.Writer) {
	line := strings.Repeat("=", 50)

	fmt.Fprintln(out, line)
	fmt.Fprintln(out, "ERROR: API credentials are not configured")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "STEPS TO FIX:")
	fmt.Fprintln(out, "1. Go to: https://testnet.binancefuture.com/")
	fmt.Fprintln(out, "2. Login and go to API Key Management")
	fmt.Fprintln(out, "3. Generate an API key with 'Enable Futures' CHECKED")
	fmt.Fprintln(out, "4. If setting IP restrictions, whitelist your current IP")
	fmt.Fprintln(out, "5. Export EXCHANGE_API_KEY and EXCHANGE_API_SECRET (or put them in .env)")
	fmt.Fprintln(out, line)
}

func printConnectivityGuidance(out io.Writer) {
	line := strings.Repeat("=", 50)

	fmt.Fprintf(out, "\n%s\n", line)
	fmt.Fprintln(out, "Failed to initialize bot. Please check:")
	fmt.Fprintln(out, "1. API key has 'Enable Futures' permission")
	fmt.Fprintln(out, "2. Your IP is whitelisted (if you set restrictions)")
	fmt.Fprintln(out, "3. You're using keys from testnet.binancefuture.com")
	fmt.Fprintf(out, "%s\n\n", line)
}

func init() {
	rootCmd.AddCommand(tradeCmd)
}
