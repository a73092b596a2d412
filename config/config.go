package config

import "os"

const (
	DEFAULT_API_URL     = "http://localhost:8799"
	DEFAULT_SERVER_ADDR = ":8799"
)

type Config struct {
	// APIURL is the backend base URL; the /api prefix is appended by the
	// client.
	APIURL string

	// ServerAddr is the devserver listen address.
	ServerAddr string

	// LogFile receives TUI logs. Empty means logs are discarded so slog
	// output never bleeds into the alternate screen.
	LogFile string
}

func FromEnv() Config {
	return Config{
		APIURL:     getEnv("SENTIMENTSCOPE_API_URL", DEFAULT_API_URL),
		ServerAddr: getEnv("SENTIMENTSCOPE_ADDR", DEFAULT_SERVER_ADDR),
		LogFile:    os.Getenv("SENTIMENTSCOPE_LOG"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
