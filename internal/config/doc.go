// Package config loads runtime configuration for the cakeshop terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   store DSN: SQLite file path, postgres:// URL or ":memory:"
//	-l string   log level (debug, info, warn, error)
//	-o string   directory downloaded media is written to
//	-k int      bcrypt cost for new passwords
//	-t int      store operation timeout (seconds)
//	-b string   S3 bucket for media export (enables the S3 sink)
//	-g string   S3 region
//	-e string   S3 endpoint URL (MinIO etc.)
//	-u string   S3 access key
//	-p string   S3 secret key
//
// # JSON schema
//
// Durations use timex.Duration, so "5s" and integer nanoseconds both work.
// Fields that are absent or empty keep their default.
//
//	{
//	  "database_dsn": "cakeshop.db",
//	  "log_level": "info",
//	  "download_dir": "downloads",
//	  "password_cost": 10,
//	  "store_timeout": "5s",
//	  "s3_bucket": "media",
//	  "s3_region": "us-east-1",
//	  "s3_endpoint": "http://127.0.0.1:9000",
//	  "s3_access_key": "admin",
//	  "s3_secret_key": "secretpassword"
//	}
package config
