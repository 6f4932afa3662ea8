package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/cakeshop/internal/flagx"
)

var knownFlags = []string{"-d", "-l", "-o", "-k", "-t", "-b", "-g", "-e", "-u", "-p"}

// parseFlags overlays cfg with command-line flags. Only the flags handled
// here are looked at, so -c/-config and anything else pass through.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("cakeshop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "store DSN (SQLite path, postgres:// URL or :memory:)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.DownloadDir, "o", cfg.DownloadDir, "download directory")
	fs.IntVar(&cfg.PasswordCost, "k", cfg.PasswordCost, "bcrypt cost")
	timeout := fs.Int("t", int(cfg.StoreTimeout.Seconds()), "store timeout (in seconds)")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3Endpoint, "e", cfg.S3Endpoint, "S3 endpoint")
	fs.StringVar(&cfg.S3AccessKey, "u", cfg.S3AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3SecretKey, "p", cfg.S3SecretKey, "S3 secret key")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// -t only overrides when given; a JSON value may be finer than a second.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.StoreTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
