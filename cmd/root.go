package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/config"
	"github.com/Awesomedisha/simplified-binance-trading-bot/internal/logger"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trading-bot",
	Short: "Interactive trading bot for the Binance futures testnet",
	Long: `Interactive trading bot for the Binance USDT-M futures testnet.

It authenticates with API credentials taken from the environment or a config
file, verifies connectivity and trading permission, then forwards menu-driven
order, order-status and balance operations to the exchange.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		return logger.Init(config.Env.Log)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: ./config.yml)")
}
