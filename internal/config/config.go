package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the cakeshop client.
type Config struct {
	DatabaseDSN  string
	LogLevel     string
	DownloadDir  string
	PasswordCost int
	StoreTimeout time.Duration

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "cakeshop.db"
	c.LogLevel = "info"
	c.DownloadDir = "downloads"
	c.PasswordCost = 10
	c.StoreTimeout = 5 * time.Second
	c.S3Region = "us-east-1"
}

// S3Enabled reports whether media export should go to a bucket instead of
// DownloadDir.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

// Load builds a Config from defaults, then the JSON file named in args (if
// any), then the flags in args. args excludes the program name.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
