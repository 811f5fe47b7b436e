package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/evanko/inkpress"
	"github.com/evanko/inkpress/scaffold"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Best effort: a missing .env just means env vars come from the shell.
	_ = godotenv.Load()

	switch os.Args[1] {
	case "build":
		run(func(app *inkpress.App) (*inkpress.BuildReport, error) {
			return app.Build()
		})
	case "check":
		run(func(app *inkpress.App) (*inkpress.BuildReport, error) {
			return app.Load()
		})
	case "serve":
		app, err := newApp()
		if err != nil {
			fatal(err)
		}
		if err := app.Serve(); err != nil {
			fatal(err)
		}
	case "new":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: inkpress new <site-dir>")
			os.Exit(1)
		}
		if err := scaffold.Create(os.Args[2]); err != nil {
			fatal(err)
		}
		fmt.Printf("Created new inkpress site: %s\n", os.Args[2])
	case "version":
		fmt.Printf("inkpress %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func newApp() (*inkpress.App, error) {
	cfg, err := inkpress.LoadSiteConfig(inkpress.EnvOr("INKPRESS_CONFIG", "site.yml"))
	if err != nil {
		return nil, err
	}
	return inkpress.New(cfg), nil
}

// run executes a pipeline command and reports per-document failures without
// hiding the articles that did succeed. Any failure makes the exit code
// non-zero so CI builds notice.
func run(fn func(*inkpress.App) (*inkpress.BuildReport, error)) {
	app, err := newApp()
	if err != nil {
		fatal(err)
	}
	report, err := fn(app)
	if err != nil {
		fatal(err)
	}
	for _, docErr := range report.Errors {
		fmt.Fprintf(os.Stderr, "error: %v\n", docErr)
	}
	fmt.Printf("%d articles", report.Loaded)
	if report.Drafts > 0 {
		fmt.Printf(", %d drafts skipped", report.Drafts)
	}
	if len(report.Errors) > 0 {
		fmt.Printf(", %d failed", len(report.Errors))
	}
	fmt.Println()
	if len(report.Errors) > 0 {
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Println(`inkpress - a static blog article pipeline

Usage:
  inkpress <command> [arguments]

Commands:
  build         Load, render, and write the site to the output directory
  serve         Start the local preview server
  check         Load and render everything, report errors, write nothing
  new <dir>     Create a new inkpress site skeleton
  version       Print the inkpress version
  help          Show this help message

Configuration is read from site.yml (override with INKPRESS_CONFIG) and
environment variables; a .env file is loaded when present.`)
}
