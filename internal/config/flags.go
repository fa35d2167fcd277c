package config

import (
	"flag"
	"io"
	"time"
)

// ParseFlags parses configuration flags from args (normally os.Args[1:]).
//
// Configuration flags come before the command word; parsing stops at the
// first non-flag token and everything from there on is returned untouched
// for the command tree to consume:
//
//	qryptify -base-url http://localhost:8000/api login -e me@example.com
//
// Flags:
//
//	-base-url backend API root (e.g. "http://localhost:8000/api")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-csrf-cookie name of the CSRF cookie
//	-d database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-assistant-model support assistant model identifier
func ParseFlags(args []string) (*StructuredConfig, []string) {
	var baseURL string
	var requestTimeout time.Duration
	var csrfCookieName string
	var databaseDSN string
	var jsonConfigPath string
	var assistantModel string

	fs := flag.NewFlagSet("qryptify", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&baseURL, "base-url", "", "Backend API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&csrfCookieName, "csrf-cookie", "", "CSRF cookie name")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&assistantModel, "assistant-model", "", "Support assistant model")

	rest := args
	if err := fs.Parse(args); err == nil {
		rest = fs.Args()
	}

	return &StructuredConfig{
		API: API{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
			CSRFCookieName: csrfCookieName,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Assistant: Assistant{
			Model: assistantModel,
		},
		JSONFilePath: jsonConfigPath,
	}, rest
}
