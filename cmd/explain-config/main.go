package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	explainconfig "github.com/alexandra5000/explain-config"
	"github.com/alexandra5000/explain-config/fs"
	confhttp "github.com/alexandra5000/explain-config/http"
	confopenai "github.com/alexandra5000/explain-config/openai"
	confslog "github.com/alexandra5000/explain-config/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// envPrefix namespaces the environment configuration keys.
const envPrefix = "EXPLAIN_CONFIG_"

// Config holds the environment configuration. Flags override it per
// invocation.
type Config struct {
	CacheDir  string `koanf:"cache_dir"`
	OllamaURL string `koanf:"ollama_url"`
	Model     string `koanf:"model"`
}

// Main represents the program.
type Main struct {
	// Config is the environment configuration. Set before calling Run().
	Config Config

	// Stdin is the input stream for the explain command.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with configuration loaded from
// the environment.
func NewMain() *Main {
	cfg, err := loadConfig()
	if err != nil {
		// Unparsable environment values fall back to defaults.
		cfg = Config{}
		applyConfigDefaults(&cfg)
	}
	return &Main{
		Config: cfg,
		Stdin:  os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("explain-config"),
		kong.Description("Explain EDOT Collector configurations using a local model."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'explain-config --help' to see available commands")
	}
	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()
	if i := strings.IndexByte(cmd, ' '); i >= 0 {
		cmd = cmd[:i]
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	archiveDir := filepath.Join(m.Config.CacheDir, "elastic_docs")
	componentsDir := filepath.Join(m.Config.CacheDir, "otel_docs")

	deps.Archive = confslog.NewLoggingDocsFetcher(
		confhttp.NewArchiveFetcher(archiveDir, fs.NewCacheStore(archiveDir)),
		"archive", logger)
	deps.Components = confslog.NewLoggingDocsFetcher(
		confhttp.NewComponentFetcher(componentsDir, fs.NewCacheStore(componentsDir)),
		"components", logger)
	deps.Context = confslog.NewLoggingContextProvider(
		explainconfig.NewContextBuilder(fs.NewCorpus(archiveDir, componentsDir)),
		logger)
	deps.Status = fs.NewStatusReporter(archiveDir, componentsDir)

	if cmd == "explain" {
		baseURL := m.Config.OllamaURL
		if cli.Explain.OllamaURL != "" {
			baseURL = cli.Explain.OllamaURL
		}
		model := m.Config.Model
		if cli.Explain.Model != "" {
			model = cli.Explain.Model
		}

		explainer := confopenai.NewExplainer(baseURL, confopenai.WithModel(model))
		if err := explainer.Ping(ctx); err != nil {
			fmt.Fprintln(stderr, "Hint: start the model server with 'ollama serve' and pull the model with 'ollama pull "+explainer.Model()+"'")
			return err
		}
		deps.Explainer = explainer
	}

	return kongCtx.Run(deps)
}

// loadConfig loads configuration from EXPLAIN_CONFIG_* environment
// variables and fills in defaults.
func loadConfig() (Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, err
	}
	applyConfigDefaults(&cfg)
	return cfg, nil
}

func applyConfigDefaults(cfg *Config) {
	if cfg.CacheDir == "" {
		cfg.CacheDir = defaultCacheDir()
	}
	if cfg.OllamaURL == "" {
		cfg.OllamaURL = confopenai.DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = confopenai.DefaultModel
	}
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".explain-config"
	}
	return filepath.Join(home, ".explain-config")
}
