// Command admintoken mints an admin JWT for DELETE /api/donations/{id}.
//
//	ADMIN_JWT_SECRET=... admintoken -sub ops@example.org -ttl 24h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"donationrecords/config"
	"donationrecords/internal/adapters/auth"
	"donationrecords/internal/domain"
)

func main() {
	subject := flag.String("sub", "admin", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.AdminJWTSecret == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_JWT_SECRET is not set")
		os.Exit(1)
	}

	token, err := auth.NewJWTIssuer(cfg.AdminJWTSecret).Issue(*subject, []string{domain.RoleAdmin}, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
