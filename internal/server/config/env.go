package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment variables read by parseEnv, e.g.
// NEWSROOM_DATABASE_DSN or NEWSROOM_SECRET_KEY.
const EnvPrefix = "NEWSROOM"

// parseEnv overlays values from NEWSROOM_* environment variables. Only
// variables that are actually set are applied.
func parseEnv(config *Config) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	str := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	str("endpoint_addr_http", &config.EndpointAddrHTTP)
	str("endpoint_addr_grpc", &config.EndpointAddrGRPC)
	str("database_dsn", &config.DatabaseDSN)
	str("secret_key", &config.SecretKey)
	str("s3_root_user", &config.S3RootUser)
	str("s3_root_password", &config.S3RootPassword)
	str("s3_bucket", &config.S3Bucket)
	str("s3_region", &config.S3Region)
	str("s3_base_endpoint", &config.S3BaseEndpoint)
	str("log_level", &config.LogLevel)

	if v.IsSet("db_max_open_conns") {
		config.DBMaxOpenConns = v.GetInt("db_max_open_conns")
	}
	if v.IsSet("db_max_idle_conns") {
		config.DBMaxIdleConns = v.GetInt("db_max_idle_conns")
	}
	if v.IsSet("db_conn_max_lifetime") {
		config.DBConnMaxLifetime = v.GetDuration("db_conn_max_lifetime")
	}
	if v.IsSet("migrate_on_start") {
		config.MigrateOnStart = v.GetBool("migrate_on_start")
	}
	if v.IsSet("access_token_validity_duration") {
		config.AccessTokenValidityDuration = v.GetDuration("access_token_validity_duration")
	}
	if v.IsSet("bcrypt_cost") {
		config.BcryptCost = v.GetInt("bcrypt_cost")
	}
	if v.IsSet("presign_expiry") {
		config.PresignExpiry = v.GetDuration("presign_expiry")
	}
	if v.IsSet("cors_allowed_origins") {
		config.CORSAllowedOrigins = splitList(v.GetString("cors_allowed_origins"))
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
