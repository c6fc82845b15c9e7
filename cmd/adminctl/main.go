// Command adminctl provisions the back-office admin account. Credentials are
// supplied interactively or via flags, never embedded in the binary.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"teenevents/config"
	"teenevents/internal/adapters/auth"
	"teenevents/internal/repository/postgres"
	"teenevents/internal/services"
)

func main() {
	email := flag.String("email", "", "Admin email (prompted when omitted)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: adminctl [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Creates the admin account when it does not exist.\n")
		fmt.Fprintf(os.Stderr, "An existing account is reported on and never promoted.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  DATABASE_URL    Postgres connection string\n")
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	adminEmail := strings.TrimSpace(*email)
	if adminEmail == "" {
		fmt.Print("Enter admin email: ")
		if _, err := fmt.Scanln(&adminEmail); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading email: %v\n", err)
			os.Exit(1)
		}
	}

	password := readPassword("Enter password:   ")
	confirm := readPassword("Confirm password: ")
	if password != confirm {
		fmt.Fprintln(os.Stderr, "Passwords do not match")
		os.Exit(1)
	}

	db, err := postgres.Open(cfg.DBUrl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	authService := services.NewAuthService(
		postgres.NewUserRepository(db),
		auth.NewBcryptHasher(0),
		auth.NewJWTTokens(cfg.JWTSecret),
		cfg.JWTExpiry,
		30*time.Second,
	)

	res, err := authService.EnsureAdmin(context.Background(), adminEmail, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	switch {
	case res.Created:
		fmt.Printf("Admin account %s created\n", res.User.Email)
	case res.IsAdmin:
		fmt.Printf("Admin account %s already exists; nothing to do\n", res.User.Email)
	default:
		fmt.Fprintf(os.Stderr, "Account %s exists but is not an admin; refusing to promote\n", res.User.Email)
		os.Exit(1)
	}
}

// readPassword reads a password without echoing it. When stdin is not a
// terminal it falls back to a plain line read so the command stays scriptable.
func readPassword(prompt string) string {
	fmt.Print(prompt)
	fd := int(syscall.Stdin)
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			os.Exit(1)
		}
		return string(raw)
	}
	var password string
	if _, err := fmt.Scanln(&password); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
		os.Exit(1)
	}
	return password
}
