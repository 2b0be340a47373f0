package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/kouper/carechat/app"
	"github.com/kouper/carechat/client"
	"github.com/kouper/carechat/config"
	"github.com/kouper/carechat/conversation"
	"github.com/kouper/carechat/logger"
	"github.com/kouper/carechat/markdown"
	"github.com/kouper/carechat/style"
)

var version = "dev"

var (
	flagURL       string
	flagConfigDir string
	flagNoColor   bool
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "carechat",
	Short: "Terminal chat client for the Kouper care coordinator assistant",
	Long: `carechat talks to the care coordinator backend (POST /chat, POST /reset).

Without a subcommand it opens the interactive chat:
  enter          send the draft
  shift+enter    newline (alt+enter or ctrl+j where shift+enter is not reported)
  ctrl+n         start a new conversation
  ctrl+c         quit

The backend origin is resolved from --url, then $CARECHAT_URL (also read
from ./.env), then backendURL in <config-dir>/config.yaml, then the
build-time default.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runChat,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "Backend origin, e.g. http://localhost:8000")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Config directory (default ~/.carechat)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable ANSI colors")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Also log to stderr (subcommands only)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorText.Render("carechat: "+err.Error()))
		os.Exit(1)
	}
}

// runtime is what every command needs once flags, env and config are merged.
type runtime struct {
	cfg    config.Config
	dir    string
	client *client.Client
	conv   *conversation.Controller
}

func setup(interactive bool) (*runtime, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}

	dir := configDir()
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if flagURL != "" {
		cfg.BackendURL = flagURL
	}

	logCfg := logger.Config{
		Enabled: cfg.Logging.Enabled || flagVerbose,
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Stderr:  flagVerbose && !interactive,
	}
	if flagVerbose {
		logCfg.Level = "debug"
	}
	if err := logger.Init(logCfg, dir); err != nil {
		fmt.Fprintln(os.Stderr, style.WarningText.Render("carechat: "+err.Error()))
	}

	applyTheme(cfg.Theme)

	c := client.New(cfg.BackendURL, cfg.Timeout)
	logger.Info("starting", "version", version, "backend", c.BaseURL, "config", filepath.Join(dir, "config.yaml"))
	return &runtime{
		cfg:    cfg,
		dir:    dir,
		client: c,
		conv:   conversation.New(c),
	}, nil
}

func configDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	return config.DefaultDir()
}

func applyTheme(name string) {
	if flagNoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		markdown.SetStyle("notty")
		return
	}
	if name == "" {
		name = "light"
		if lipgloss.HasDarkBackground() {
			name = "dark"
		}
	}
	if !style.SetTheme(name) {
		logger.Warn("unknown theme, using dark", "theme", name)
		style.SetTheme("dark")
		name = "dark"
	}
	markdown.SetStyle(name)
}

func runChat(cmd *cobra.Command, args []string) error {
	rt, err := setup(true)
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := app.New(ctx, rt.conv, rt.client.BaseURL)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run chat")
	}
	return nil
}
