// Package config resolves the run configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/M-MorreddygariTharun/Github-Data-Extraction/internal/domain"
)

const (
	defaultOwner   = "GM-SDV-UP"
	defaultRepo    = "gmhmi_fcc"
	defaultOutDir  = "."
	defaultPerPage = 100

	tokenEnvVar = "GITHUB_TOKEN"
)

// Config is the resolved run configuration. It is built once at startup and
// passed into the wiring; nothing reads the environment after Load returns.
type Config struct {
	Owner   string
	Repo    string
	Token   string
	OutDir  string
	PerPage int

	// StartDate and EndDate are the raw user date strings; empty means
	// unset, and the caller decides between prompting and the last-24h
	// default.
	StartDate string
	EndDate   string

	DebugDump bool
}

// Load builds the Config from the environment, after an optional .env file.
// A missing token fails with a *domain.CredentialMissingError before any
// network activity can happen.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Owner:     getEnv("REPO_OWNER", defaultOwner),
		Repo:      getEnv("REPO_NAME", defaultRepo),
		Token:     os.Getenv(tokenEnvVar),
		OutDir:    getEnv("OUT_DIR", defaultOutDir),
		PerPage:   defaultPerPage,
		StartDate: strings.TrimSpace(os.Getenv("START_DATE")),
		EndDate:   strings.TrimSpace(os.Getenv("END_DATE")),
		DebugDump: boolEnv("DEBUG_DUMP"),
	}

	// A combined "owner/repo" value overrides both parts when well-formed.
	if combined := os.Getenv("GITHUB_REPOSITORY"); combined != "" {
		owner, repo, ok := strings.Cut(combined, "/")
		if ok && owner != "" && repo != "" {
			cfg.Owner = owner
			cfg.Repo = repo
		}
	}

	if v := os.Getenv("PER_PAGE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid PER_PAGE value %q: expected a positive integer", v)
		}
		cfg.PerPage = n
	}

	if cfg.Token == "" {
		return Config{}, &domain.CredentialMissingError{EnvVar: tokenEnvVar}
	}
	return cfg, nil
}

// Interactive reports whether stdin is a terminal, so the caller may prompt
// for missing dates instead of falling back to the last-24h default.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func getEnv(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}

func boolEnv(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
