package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ovtools/ovmcp/internal/api"
	"github.com/ovtools/ovmcp/internal/config"
	"github.com/ovtools/ovmcp/internal/dispatch"
	"github.com/ovtools/ovmcp/internal/doctor"
	"github.com/ovtools/ovmcp/internal/log"
	"github.com/ovtools/ovmcp/internal/query"
	"github.com/ovtools/ovmcp/internal/server"
	"github.com/ovtools/ovmcp/internal/toolkit"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "serve":
		os.Exit(runServe(args))
	case "doctor":
		os.Exit(runDoctor(args))
	case "config":
		os.Exit(runConfigNoun(args))
	case "version":
		fmt.Printf("ovmcp version %s\n", version)
		os.Exit(0)
	case "help", "--help", "-h":
		printUsage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`ovmcp - protocol adapter for the OakVar toolkit

Usage:
  ovmcp <command> [flags]

Commands:
  serve             Serve operations over stdio (and HTTP when enabled)
  doctor            Validate configuration and toolkit installation
  config lock       Authorize current config state (update integrity hashes)
  config check      Verify config integrity against recorded hashes
  version           Show version information
  help              Show this help message

Serve Flags:
  -config <path>    Path to configuration file (defaults apply when omitted)
  -api              Enable the HTTP surface regardless of config

Doctor Flags:
  -config <path>    Path to configuration file
  -json             Output in JSON
`)
}

// loadConfig loads the file at path, or returns built-in defaults when no
// path is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Defaults(), nil
	}
	return config.Load(path)
}

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	forceAPI := fs.Bool("api", false, "Enable the HTTP surface regardless of config")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		return 1
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log.Setup(cfg.Service.LogLevel)
	logger := log.WithComponent("main")
	logger.Info("ovmcp starting", "version", version, "config", *configPath)

	if *configPath != "" {
		if err := config.Verify(*configPath); err != nil {
			logger.Error("config integrity check failed", "error", err)
			fmt.Fprintf(os.Stderr, "Config integrity check failed: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'ovmcp config lock' to authorize the current state.")
			return 1
		}
	}

	// Locate the toolkit before advertising any operations.
	tk, err := toolkit.NewCLI(cfg.Toolkit.Executable, cfg.Toolkit.Timeout)
	if err != nil {
		logger.Error("toolkit not available", "executable", cfg.Toolkit.Executable, "error", err)
		fmt.Fprintf(os.Stderr, "Toolkit not available: %v\n", err)
		return 1
	}
	logger.Info("toolkit located", "path", tk.Path())

	queries := query.NewExecutor(cfg.Query.DefaultLimit, cfg.Query.MaxLimit)
	dispatcher := dispatch.New(tk, queries)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.API.Enabled || *forceAPI {
		apiServer := api.New(api.Config{Listen: cfg.API.Listen}, dispatcher, version)
		go func() {
			if err := apiServer.Start(ctx); err != nil && ctx.Err() == nil {
				logger.Error("api server failed", "error", err)
			}
		}()
	}

	srv := server.New(dispatcher, cfg.Service.Name, version)
	if err := srv.Run(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		logger.Error("transport failed", "error", err)
		return 1
	}

	logger.Info("ovmcp stopped")
	return 0
}

func runDoctor(args []string) int {
	fs := flag.NewFlagSet("doctor", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	jsonOut := fs.Bool("json", false, "Output in JSON")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		return 1
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log.Setup("ERROR")

	// A missing toolkit is a finding, not a startup failure here.
	var tk toolkit.Toolkit
	if cli, err := toolkit.NewCLI(cfg.Toolkit.Executable, cfg.Toolkit.Timeout); err == nil {
		tk = cli
	}

	result := doctor.New(cfg, tk).Validate(context.Background())

	if *jsonOut {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode result: %v\n", err)
			return 1
		}
		fmt.Println(string(out))
	} else {
		printDoctorResult(result)
	}

	if !result.Valid {
		return 1
	}
	return 0
}

func printDoctorResult(result *doctor.Result) {
	for _, issue := range result.Errors {
		if issue.Field != "" {
			fmt.Printf("ERROR [%s] %s: %s\n", issue.Category, issue.Field, issue.Message)
		} else {
			fmt.Printf("ERROR [%s] %s\n", issue.Category, issue.Message)
		}
	}
	for _, issue := range result.Warnings {
		if issue.Field != "" {
			fmt.Printf("WARN  [%s] %s: %s\n", issue.Category, issue.Field, issue.Message)
		} else {
			fmt.Printf("WARN  [%s] %s\n", issue.Category, issue.Message)
		}
	}
	if result.Valid {
		fmt.Println("ok")
	}
}

func runConfigNoun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: ovmcp config <lock|check> -config <path>")
		return 1
	}

	action := args[0]
	fs := flag.NewFlagSet("config "+action, flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		return 1
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "-config is required")
		return 1
	}

	switch action {
	case "lock":
		if err := config.Lock(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Lock failed: %v\n", err)
			return 1
		}
		fmt.Println("Config state authorized.")
		return 0
	case "check":
		if _, err := config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Config load error: %v\n", err)
			return 1
		}
		if err := config.Verify(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Integrity check failed: %v\n", err)
			return 1
		}
		fmt.Println("Config is valid and matches the recorded hashes.")
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown config action: %s\n", action)
		return 1
	}
}
