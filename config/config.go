package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	defaultAppName          = "tiny-erm"
	defaultAppPort          = 8080
	defaultRegNoMaxAttempts = 3
	defaultHospitalCacheTTL = 5 * time.Minute
	defaultRateLimit        = 30
	defaultRateWindow       = time.Minute
)

// Config holds the application's configuration values.
type Config struct {
	AppName  string `json:"appname"`
	AppEnv   string `json:"appenv"`
	AppPort  uint16 `json:"appport"`
	GinMode  string `json:"ginmode"`
	LogLevel string `json:"loglevel"`
	DBHost   string `json:"dbhost"`
	DBPort   uint16 `json:"dbport"`
	DBName   string `json:"dbname"`
	DBUSER   string `json:"dbuser"`
	DBPass   string `json:"dbpass"`

	// RegNoYearRollover restarts the sequence at 00001 once the calendar year
	// moves past the year of the hospital's current maximum.
	RegNoYearRollover bool `json:"regno_year_rollover"`
	RegNoMaxAttempts  int  `json:"regno_max_attempts"`

	HospitalCacheTTL time.Duration `json:"hospital_cache_ttl"`
	RateLimit        int           `json:"ratelimit_limit"`
	RateWindow       time.Duration `json:"ratelimit_window"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// A missing .env is fine, the process environment is used as is.
		if err := godotenv.Load(); err != nil {
			log.Debug().Err(err).Msg("no .env file loaded")
		}

		config = &Config{
			AppName:           envString("APPNAME", defaultAppName),
			AppEnv:            os.Getenv("APPENV"),
			AppPort:           uint16(envUint("APPPORT", defaultAppPort, 16)),
			GinMode:           envString("GINMODE", "debug"),
			LogLevel:          envString("LOGLEVEL", "info"),
			DBHost:            os.Getenv("DBHOST"),
			DBPort:            uint16(envUint("DBPORT", 3306, 16)),
			DBName:            os.Getenv("DBNAME"),
			DBUSER:            os.Getenv("DBUSER"),
			DBPass:            os.Getenv("DBPASS"),
			RegNoYearRollover: envBool("REGNO_YEAR_ROLLOVER", false),
			RegNoMaxAttempts:  int(envUint("REGNO_MAX_ATTEMPTS", defaultRegNoMaxAttempts, 8)),
			HospitalCacheTTL:  envDuration("HOSPITAL_CACHE_TTL", defaultHospitalCacheTTL),
			RateLimit:         int(envUint("RATELIMIT_LIMIT", defaultRateLimit, 32)),
			RateWindow:        envDuration("RATELIMIT_WINDOW", defaultRateWindow),
		}
	})
	return config
}

// ResetForTest drops the loaded singleton so the next LoadConfig call reads the environment again.
func ResetForTest() {
	config = nil
	once = sync.Once{}
}

// IsTest reports whether the application runs with APPENV=test.
func (c *Config) IsTest() bool {
	return c.AppEnv == "test"
}

// ConnectMySQL establishes a connection to a MySQL database using the configuration values.
// With APPENV=test it opens a private in-memory sqlite database instead.
func ConnectMySQL() (*gorm.DB, error) {
	cfg := LoadConfig()
	gormCfg := &gorm.Config{TranslateError: true}

	if cfg.IsTest() || os.Getenv("APPENV") == "test" {
		dsn := fmt.Sprintf("file:tinyerm_%d?mode=memory&cache=shared", time.Now().UnixNano())
		return gorm.Open(sqlite.Open(dsn), gormCfg)
	}

	// Build the Data Source Name (DSN) using the configuration values.
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true", cfg.DBUSER, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := gorm.Open(mysql.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open mysql %s:%d/%s: %w", cfg.DBHost, cfg.DBPort, cfg.DBName, err)
	}
	return db, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envUint(key string, fallback uint64, bits int) uint64 {
	v, err := strconv.ParseUint(os.Getenv(key), 10, bits)
	if err != nil || v == 0 {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
