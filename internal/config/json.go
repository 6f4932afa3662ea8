package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/cakeshop/internal/flagx"
	"github.com/dmitrijs2005/cakeshop/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DatabaseDSN  string         `json:"database_dsn"`
	LogLevel     string         `json:"log_level"`
	DownloadDir  string         `json:"download_dir"`
	PasswordCost int            `json:"password_cost"`
	StoreTimeout timex.Duration `json:"store_timeout"`
	S3Bucket     string         `json:"s3_bucket"`
	S3Region     string         `json:"s3_region"`
	S3Endpoint   string         `json:"s3_endpoint"`
	S3AccessKey  string         `json:"s3_access_key"`
	S3SecretKey  string         `json:"s3_secret_key"`
}

// parseJson overlays cfg with the file named by -c/-config in args. Without
// either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.DownloadDir, jc.DownloadDir)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	if jc.PasswordCost != 0 {
		cfg.PasswordCost = jc.PasswordCost
	}
	if jc.StoreTimeout.Duration != 0 {
		cfg.StoreTimeout = jc.StoreTimeout.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
