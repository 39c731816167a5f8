package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath   = ".env"
	SecretKey = "SecRetKey"
	EnvLocal  = "local"
	EnvDev    = "dev"
	EnvProd   = "prod"
)

type Config struct {
	Env       string
	DB        db
	Server    server
	Logger    logger
	Auth      auth
	Retention retention
}

type defaultConfig struct {
	RunAddress     string
	DatabaseURI    string
	LogLevel       string
	Secret         string
	Env            string
	Migrations     string
	TokenTTLHours  int
	RetentionDays  int
	RateLimitRPS   int
	RateLimitBurst int
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress     string `env:"RUN_ADDRESS"`
	RateLimitRPS   int    `env:"RATE_LIMIT_RPS"`
	RateLimitBurst int    `env:"RATE_LIMIT_BURST"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type auth struct {
	Secret        string `env:"JWT_SECRET"`
	TokenTTLHours int    `env:"TOKEN_TTL_HOURS"`
}

// retention управляет периодической очисткой устаревших резервных копий.
// Days <= 0 отключает планировщик полностью.
type retention struct {
	Days int `env:"RETENTION_DAYS"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	d := defaultConfig{
		RunAddress:     viper.GetString("run_address"),
		DatabaseURI:    viper.GetString("database_uri"),
		LogLevel:       viper.GetString("log_level"),
		Secret:         viper.GetString("jwt_secret"),
		Env:            viper.GetString("app_env"),
		Migrations:     viper.GetString("migrations_path"),
		TokenTTLHours:  viper.GetInt("token_ttl_hours"),
		RetentionDays:  viper.GetInt("retention_days"),
		RateLimitRPS:   viper.GetInt("rate_limit_rps"),
		RateLimitBurst: viper.GetInt("rate_limit_burst"),
	}
	if d.Secret == "" {
		d.Secret = SecretKey
	}
	if d.RunAddress == "" {
		d.RunAddress = ":8080"
	}
	if d.Migrations == "" {
		d.Migrations = "migrations"
	}
	if d.TokenTTLHours <= 0 {
		d.TokenTTLHours = 24
	}
	if d.RateLimitRPS <= 0 {
		d.RateLimitRPS = 10
	}
	if d.RateLimitBurst <= 0 {
		d.RateLimitBurst = 20
	}

	config := Config{
		Env: d.Env,
		DB: db{
			DatabaseURI: d.DatabaseURI,
			Migrations:  d.Migrations,
		},
		Server: server{
			RunAddress:     d.RunAddress,
			RateLimitRPS:   d.RateLimitRPS,
			RateLimitBurst: d.RateLimitBurst,
		},
		Logger:    logger{LogLevel: d.LogLevel},
		Auth:      auth{Secret: d.Secret, TokenTTLHours: d.TokenTTLHours},
		Retention: retention{Days: d.RetentionDays},
	}

	return &config
}
