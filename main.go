package main

import (
	"github.com/joho/godotenv"

	"github.com/Awesomedisha/simplified-binance-trading-bot/cmd"
)

func main() {
	// Load .env (best-effort). If missing, fall back to real env vars.
	_ = godotenv.Load()

	cmd.Execute()
}
