// Command devtoken mints an access token signed with the server's JWT secret
// so the API can be exercised locally without an identity provider.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/asset_tracker/internal/platform/config"
	"github.com/SscSPs/asset_tracker/internal/utils"
	"github.com/spf13/pflag"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	subject := pflag.StringP("user", "u", "", "user ID to put in the token subject (required)")
	ttl := pflag.DurationP("ttl", "t", 24*time.Hour, "token lifetime")
	pflag.Parse()

	if *subject == "" {
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	token, err := utils.GenerateJWT(*subject, cfg.JWTSecret, *ttl, cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
