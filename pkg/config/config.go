// Package config resolves settings shared by the blockfall commands from
// flags, then environment variables, then defaults.
package config

import (
	"os"

	"github.com/cbodonnell/blockfall/pkg/log"
)

const (
	DatabaseURLEnv = "BLOCKFALL_DATABASE_URL"
	LogLevelEnv    = "BLOCKFALL_LOG_LEVEL"
	TLSCertFileEnv = "BLOCKFALL_API_TLS_CERT_FILE"
	TLSKeyFileEnv  = "BLOCKFALL_API_TLS_KEY_FILE"

	DefaultDatabaseURL = "sqlite://blockfall.db"
	DefaultLogLevel    = "info"
)

// Resolve returns value if set, otherwise the env variable if set, otherwise fallback.
func Resolve(value, env, fallback string) string {
	if value != "" {
		return value
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return fallback
}

func DatabaseURL(value string) string {
	return Resolve(value, DatabaseURLEnv, DefaultDatabaseURL)
}

func LogLevel(value string) (log.LogLevel, error) {
	return log.ParseLogLevel(Resolve(value, LogLevelEnv, DefaultLogLevel))
}

// TLSFiles returns the API server certificate and key files. Both are empty
// unless both are set.
func TLSFiles() (certFile, keyFile string) {
	certFile, keyFile = os.Getenv(TLSCertFileEnv), os.Getenv(TLSKeyFileEnv)
	if certFile == "" || keyFile == "" {
		return "", ""
	}
	return certFile, keyFile
}
