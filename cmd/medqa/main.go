// Package main is the medqa CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/healthdesk/medqa/internal/cli"
	"github.com/healthdesk/medqa/internal/config"
	"github.com/healthdesk/medqa/internal/docstore"
	"github.com/healthdesk/medqa/internal/knowledge"
	"github.com/healthdesk/medqa/internal/models"
	"github.com/healthdesk/medqa/internal/qa"
	"github.com/healthdesk/medqa/internal/server"
	"github.com/healthdesk/medqa/pkg/utils"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var version = "dev"

const (
	defaultConfigPath = "/usr/local/etc/medqa/config.yaml"
	defaultServerURL  = "http://localhost:5000"
)

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "ask":
		runAsk()
	case "upload":
		runUpload()
	case "stats":
		runStats()
	case "version", "--version", "-v":
		fmt.Printf("medqa version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`Usage: medqa <command> [flags]

Commands:
  server    Run the HTTP API server
  ask       Ask a medical question against a running server
  upload    Upload a text document to a running server
  stats     Show knowledge base statistics
  version   Print version
  help      Print this help

Run "medqa <command> -h" for command flags.
`)
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	// Optional .env for HOST/PORT/DEBUG style overrides.
	_ = godotenv.Load()

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	kb := knowledge.NewStore()
	docs := docstore.NewStore(logger)
	docs.SeedFromFile(cfg.Docs.SamplePath)
	engine := qa.NewEngine(kb, docs, logger)
	logger.Info("QA engine initialized",
		zap.Int("topics", kb.Count()),
		zap.String("engine", cfg.Engine.Name),
	)

	srv := server.NewServer(engine, docs, kb, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// buildQuestion joins all positional args with spaces so multi-word questions
// work the same with or without shell quoting.
func buildQuestion(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func runAsk() {
	askArgs := argsReorder(os.Args[2:])
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	serverURL := fs.String("server", defaultServerURL, "server URL")
	askContext := fs.String("context", "", "optional context string (accepted by the API, not used by dispatch)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(askArgs)

	question := buildQuestion(fs.Args())
	if question == "" {
		fmt.Fprintln(os.Stderr, "Usage: medqa ask [flags] <question>")
		os.Exit(1)
	}

	format := cli.OutputText
	switch *outputFormat {
	case "json":
		format = cli.OutputJSON
	case "text":
		format = cli.OutputText
	default:
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	response, err := askViaHTTP(*serverURL, question, *askContext)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ask failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteAnswer(os.Stdout, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runUpload() {
	uploadArgs := argsReorder(os.Args[2:])
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	serverURL := fs.String("server", defaultServerURL, "server URL")
	_ = fs.Parse(uploadArgs)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: medqa upload [flags] <file>")
		os.Exit(1)
	}
	path := fs.Arg(0)
	response, err := uploadViaHTTP(*serverURL, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Upload failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s (%d chars)\n", response.Message, response.ContentLength)
}

func runStats() {
	statsArgs := argsReorder(os.Args[2:])
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	serverURL := fs.String("server", defaultServerURL, "server URL")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(statsArgs)

	format := cli.OutputText
	if *outputFormat == "json" {
		format = cli.OutputJSON
	}
	response, err := statsViaHTTP(*serverURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Stats failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteStats(os.Stdout, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

// argsReorder moves any flags (and their values) that appear after positional
// arguments to the front of the slice so that flag.Parse() sees them. Go's
// flag package stops at the first non-flag argument, so
// "medqa ask what is diabetes -output json" would otherwise leave -output
// unparsed.
func argsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func askViaHTTP(serverURL, question, askContext string) (*models.AskResponse, error) {
	body, err := json.Marshal(models.AskRequest{Question: question, Context: askContext})
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(serverURL+"/api/v1/ask", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var response models.AskResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}

func uploadViaHTTP(serverURL, path string) (*models.UploadFileResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	resp, err := http.Post(serverURL+"/api/v1/docs/upload", mw.FormDataContentType(), &buf)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var response models.UploadFileResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}

func statsViaHTTP(serverURL string) (*models.StatsResponse, error) {
	resp, err := http.Get(serverURL + "/api/v1/docs/stats")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var response models.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}
