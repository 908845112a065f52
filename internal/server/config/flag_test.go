package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:8080", "-m", "127.0.0.1:9090", "-d", "db", "-s", "secret",
				"-t", "24", "-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1",
				"-e", "http://endpoint", "-l", "debug",
			},
			expected: &Config{
				EndpointAddrHTTP:            "127.0.0.1:8080",
				EndpointAddrGRPC:            "127.0.0.1:9090",
				DatabaseDSN:                 "db",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 24 * time.Hour,
				S3RootUser:                  "user",
				S3RootPassword:              "password",
				S3Bucket:                    "bucket",
				S3Region:                    "us-west-1",
				S3BaseEndpoint:              "http://endpoint",
				LogLevel:                    "debug",
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "cfg.json", "-x", "-s", "k"},
			expected: &Config{SecretKey: "k"},
		},
		{
			name:      "non-numeric validity",
			args:      []string{"-t", "week"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			err := parseFlags(config, tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_ValidityUntouchedWithoutFlag(t *testing.T) {
	config := &Config{AccessTokenValidityDuration: 90 * time.Minute}
	require.NoError(t, parseFlags(config, nil))
	assert.Equal(t, 90*time.Minute, config.AccessTokenValidityDuration)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("NEWSROOM_DATABASE_DSN", "postgres://env")
	t.Setenv("NEWSROOM_BCRYPT_COST", "12")
	t.Setenv("NEWSROOM_ACCESS_TOKEN_VALIDITY_DURATION", "48h")
	t.Setenv("NEWSROOM_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("NEWSROOM_MIGRATE_ON_START", "false")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "postgres://env", cfg.DatabaseDSN)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 48*time.Hour, cfg.AccessTokenValidityDuration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.MigrateOnStart)
	assert.Equal(t, "secretKey", cfg.SecretKey, "unset variables keep their value")
}
