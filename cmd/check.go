package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/config"
	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/entity"
	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/service/exchange"
)

type checkStatus string

const (
	statusPass checkStatus = "PASS"
	statusFail checkStatus = "FAIL"
)

type checkResult struct {
	Name       string      `json:"name"`
	Status     checkStatus `json:"status"`
	DurationMs int64       `json:"duration_ms"`
	Detail     string      `json:"detail,omitempty"`
	Error      string      `json:"error,omitempty"`
}

type checkReport struct {
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Testnet    bool          `json:"testnet"`
	Checks     []checkResult `json:"checks"`
}

var checkTimeout time.Duration

// checkCmd verifies exchange connectivity and API-key permission scope
// without entering the interactive menu.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify exchange connectivity and API-key permission scope",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := config.Env.Exchange.ValidateCredentials()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
		defer cancel()

		binanceExchange := exchange.InitBinanceFuturesExchange(config.Env.Exchange)

		report := checkReport{
			StartedAt: time.Now().UTC(),
			Testnet:   config.Env.Exchange.Testnet,
		}

		report.Checks = append(report.Checks, runCheck("server_time", func() (string, error) {
			serverTime, err := binanceExchange.ServerTime(ctx)
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("server time %d", serverTime), nil
		}))

		report.Checks = append(report.Checks, runCheck("account_permissions", func() (string, error) {
			_, err := binanceExchange.AccountInfo(ctx)
			if err != nil {
				if entity.IsPermissionDenied(err) {
					return "", fmt.Errorf("%w: %v", entity.ErrTradingPermission, err)
				}

				return "", err
			}

			return "futures trading permission granted", nil
		}))

		report.FinishedAt = time.Now().UTC()

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		for _, check := range report.Checks {
			if check.Status == statusFail {
				return fmt.Errorf("check %s failed: %s", check.Name, check.Error)
			}
		}

		return nil
	},
}

func runCheck(name string, fn func() (string, error)) checkResult {
	started := time.Now()
	detail, err := fn()

	result := checkResult{
		Name:       name,
		Status:     statusPass,
		DurationMs: time.Since(started).Milliseconds(),
		Detail:     detail,
	}
	if err != nil {
		result.Status = statusFail
		result.Error = err.Error()
	}

	return result
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 30*time.Second, "total timeout for all checks")
}
