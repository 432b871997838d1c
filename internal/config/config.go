package config

import (
	"time"

	"github.com/spf13/viper"
)

type PasswordScheme string

const (
	PasswordSchemePlain  PasswordScheme = "plain"  // Stored and compared as-is (default)
	PasswordSchemeBcrypt PasswordScheme = "bcrypt" // bcrypt hashes via golang.org/x/crypto
)

type (
	Config struct {
		HTTP
		Global
		Database
		App
		Auth
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	App struct {
		Env string // Reported by the greeting endpoint
	}
	Auth struct {
		JWTSecret      string // Generated at startup when empty
		TokenLifetime  time.Duration
		PasswordScheme PasswordScheme
		BcryptCost     int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("app_env", "")

	// Auth defaults
	v.SetDefault("auth_jwt_secret", "") // Auto-generated if empty
	v.SetDefault("auth_password_scheme", string(PasswordSchemePlain))
	v.SetDefault("auth_bcrypt_cost", 12)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		App: App{
			Env: v.GetString("APP_ENV"),
		},
		Auth: Auth{
			JWTSecret:      v.GetString("AUTH_JWT_SECRET"),
			TokenLifetime:  DefaultTokenLifetime,
			PasswordScheme: PasswordScheme(v.GetString("AUTH_PASSWORD_SCHEME")),
			BcryptCost:     v.GetInt("AUTH_BCRYPT_COST"),
		},
	}
}
