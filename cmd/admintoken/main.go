// Command admintoken issues a signed admin token for the reservation and
// message listings. It reads JWT_SECRET and JWT_DURATION like the server.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/jwt"

	"github.com/kelseyhightower/envconfig"
)

func main() {
	subject := flag.String("subject", "front-desk", "token subject recorded in request logs")
	ttl := flag.Duration("ttl", 0, "token lifetime, overrides JWT_DURATION")
	flag.Parse()

	var cfg config.JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("failed to read JWT settings", "error", err)
		os.Exit(1)
	}

	duration := *ttl
	if duration == 0 {
		d, err := time.ParseDuration(cfg.Duration)
		if err != nil {
			slog.Error("invalid JWT_DURATION", "error", err)
			os.Exit(1)
		}
		duration = d
	}

	token, err := jwt.NewService(cfg.Secret, duration).GenerateToken(*subject, jwt.RoleAdmin)
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
