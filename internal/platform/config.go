package platform

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ApiUrl         string
	RequestTimeout time.Duration
	SessionFile    string
	FileLog        string
}

var DefaultConfig = &Config{
	ApiUrl:         "http://localhost:5000/api",
	RequestTimeout: 30 * time.Second,
	FileLog:        "hatra.log",
}

func Init() *Config {
	loadEnv()

	cfg := &Config{
		ApiUrl:         DefaultConfig.ApiUrl,
		RequestTimeout: DefaultConfig.RequestTimeout,
		FileLog:        DefaultConfig.FileLog,
	}
	if v := os.Getenv("HATRA_API_URL"); v != "" {
		cfg.ApiUrl = v
	}
	cfg.ApiUrl = removeTrailingSlash(cfg.ApiUrl)
	if v := os.Getenv("HATRA_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil && seconds > 0 {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}
	if v := os.Getenv("HATRA_LOG_FILE"); v != "" {
		cfg.FileLog = v
	}
	cfg.SessionFile = os.Getenv("HATRA_SESSION_FILE")
	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.SessionFile = filepath.Join(home, ".hatra", "session.json")
	}
	return cfg
}

func removeTrailingSlash(s string) string {
	if len(s) > 0 && s[len(s)-1] == '/' {
		return s[:len(s)-1]
	}
	return s
}

func loadEnv() {
	env := os.Getenv("APP_ENV")
	if "" == env {
		env = "development"
	}

	godotenv.Load(".env." + env + ".local")

	if "test" != env {
		godotenv.Load(".env.local")
	}
	godotenv.Load(".env." + env)
	godotenv.Load()
}
