package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// config is the harness's own process configuration. The matching core
// takes no configuration at all (a bare constructor); everything here
// governs only how this process drives it.
type config struct {
	symbol    string
	orderRate int
	logLevel  string
	logPretty bool
}

func loadConfig() config {
	_ = godotenv.Load() // ignore error if .env doesn't exist

	return config{
		symbol:    getEnvString("MATCHBOOK_SYMBOL", "BTCUSD"),
		orderRate: getEnvInt("MATCHBOOK_ORDER_RATE", 0),
		logLevel:  getEnvString("MATCHBOOK_LOG_LEVEL", "info"),
		logPretty: getEnvBool("MATCHBOOK_LOG_PRETTY", true),
	}
}

func getEnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
