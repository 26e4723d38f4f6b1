package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	TLS_DOMAINS    = ""           // e.g. "example.com,www.example.com"
	MYSQL_DSN      = ""           // MySQL will be used if this is set
	SQLITE_FILE    = "wedding.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS   = "0.0.0.0:3001"
	DEBUG_MODE     = true
	METRICS_PREFIX = "wedding"
)

func init() {
	// .env values never override variables already set in the environment
	_ = godotenv.Load()

	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("METRICS_PREFIX", &METRICS_PREFIX)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}
