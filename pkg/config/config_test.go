package config

import (
	"testing"

	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Setenv("BLOCKFALL_TEST_VALUE", "from-env")

	tests := []struct {
		name  string
		value string
		env   string
		want  string
	}{
		{name: "flag wins", value: "from-flag", env: "BLOCKFALL_TEST_VALUE", want: "from-flag"},
		{name: "env", env: "BLOCKFALL_TEST_VALUE", want: "from-env"},
		{name: "fallback", env: "BLOCKFALL_TEST_UNSET", want: "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.value, tt.env, "fallback"))
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	t.Setenv(DatabaseURLEnv, "")
	assert.Equal(t, DefaultDatabaseURL, DatabaseURL(""))

	t.Setenv(DatabaseURLEnv, "memory://")
	assert.Equal(t, "memory://", DatabaseURL(""))
	assert.Equal(t, "sqlite://other.db", DatabaseURL("sqlite://other.db"))
}

func TestLogLevel(t *testing.T) {
	t.Setenv(LogLevelEnv, "")
	level, err := LogLevel("")
	require.NoError(t, err)
	assert.Equal(t, log.LogLevelInfo, level)

	t.Setenv(LogLevelEnv, "debug")
	level, err = LogLevel("")
	require.NoError(t, err)
	assert.Equal(t, log.LogLevelDebug, level)

	_, err = LogLevel("loud")
	assert.Error(t, err)
}

func TestTLSFiles(t *testing.T) {
	t.Setenv(TLSCertFileEnv, "cert.pem")
	t.Setenv(TLSKeyFileEnv, "")
	cert, key := TLSFiles()
	assert.Empty(t, cert)
	assert.Empty(t, key)

	t.Setenv(TLSKeyFileEnv, "key.pem")
	cert, key = TLSFiles()
	assert.Equal(t, "cert.pem", cert)
	assert.Equal(t, "key.pem", key)
}
