package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/newsroom/internal/flagx"
	"github.com/dmitrijs2005/newsroom/internal/timex"
)

// JsonConfig mirrors Config for JSON decoding. Durations use timex.Duration
// so both "168h" and integer nanoseconds are accepted. Pointer fields tell
// "absent" from "zero", so a partial file only overrides what it names.
type JsonConfig struct {
	EndpointAddrHTTP            *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	DBMaxOpenConns              *int            `json:"db_max_open_conns"`
	DBMaxIdleConns              *int            `json:"db_max_idle_conns"`
	DBConnMaxLifetime           *timex.Duration `json:"db_conn_max_lifetime"`
	MigrateOnStart              *bool           `json:"migrate_on_start"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	BcryptCost                  *int            `json:"bcrypt_cost"`
	S3RootUser                  *string         `json:"s3_root_user"`
	S3RootPassword              *string         `json:"s3_root_password"`
	S3Bucket                    *string         `json:"s3_bucket"`
	S3Region                    *string         `json:"s3_region"`
	S3BaseEndpoint              *string         `json:"s3_base_endpoint"`
	PresignExpiry               *timex.Duration `json:"presign_expiry"`
	CORSAllowedOrigins          []string        `json:"cors_allowed_origins"`
	LogLevel                    *string         `json:"log_level"`
}

// parseJSON loads the file named by -c/-config in args, if any, into config.
func parseJSON(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	setIf(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.DBMaxOpenConns, c.DBMaxOpenConns)
	setIf(&config.DBMaxIdleConns, c.DBMaxIdleConns)
	setIf(&config.MigrateOnStart, c.MigrateOnStart)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.BcryptCost, c.BcryptCost)
	setIf(&config.S3RootUser, c.S3RootUser)
	setIf(&config.S3RootPassword, c.S3RootPassword)
	setIf(&config.S3Bucket, c.S3Bucket)
	setIf(&config.S3Region, c.S3Region)
	setIf(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setIf(&config.LogLevel, c.LogLevel)

	if c.DBConnMaxLifetime != nil {
		config.DBConnMaxLifetime = c.DBConnMaxLifetime.Duration
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.PresignExpiry != nil {
		config.PresignExpiry = c.PresignExpiry.Duration
	}
	if c.CORSAllowedOrigins != nil {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}

	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
