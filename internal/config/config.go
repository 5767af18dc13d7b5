package config

import (
	"os"
	"strconv"
	"strings"

	applog "droneshop/internal/log"
)

type Config struct {
	Port         string
	DBDSN        string
	MediaDir     string
	StaticDir    string
	TemplatesDir string
	LogFile      string
	SeedDemo     bool

	RateLimit      int // requests per minute per IP
	LoginRateLimit int // login attempts per 10 minutes per IP
	BodyLimit      int
	CookieSecure   bool
}

func Load() Config {
	cfg := Config{
		Port:     getEnv("PORT", "8080"),
		DBDSN:    getEnv("DB_DSN", "droneshop.db"), // sqlite file in project root
		MediaDir: getEnv("MEDIA_DIR", "./web/media"),
		// Empty means the embedded templates are used.
		TemplatesDir: os.Getenv("TEMPLATES_DIR"),
		StaticDir:    getEnv("STATIC_DIR", "./web/static"),
		SeedDemo:     getEnvBool("SEED_DEMO", true),

		RateLimit:      getEnvInt("RATE_LIMIT", 60),
		LoginRateLimit: getEnvInt("LOGIN_RATE_LIMIT", 5),
		BodyLimit:      getEnvInt("BODY_LIMIT", 1<<20),
		CookieSecure:   getEnvBool("COOKIE_SECURE", false),
	}
	// LOG_FILE="" disables the file sink; unset falls back to the default.
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		cfg.LogFile = v
	} else {
		cfg.LogFile = "./droneshop.log"
	}

	applog.Info(nil, "config.loaded", map[string]any{
		"port":      cfg.Port,
		"db_dsn":    cfg.DBDSN,
		"media_dir": cfg.MediaDir,
		"log_file":  cfg.LogFile,
		"seed_demo": cfg.SeedDemo,
	})
	return cfg
}

// Testing returns a config suitable for in-memory tests: no seed, no file
// logging and limits high enough not to interfere.
func Testing() Config {
	return Config{
		Port:           "0",
		DBDSN:          ":memory:",
		MediaDir:       "./web/media",
		StaticDir:      "./web/static",
		RateLimit:      10000,
		LoginRateLimit: 10000,
		BodyLimit:      1 << 20,
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil && i > 0 {
			return i
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err == nil {
			return b
		}
	}
	return def
}
