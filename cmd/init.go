package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kouper/carechat/client"
	"github.com/kouper/carechat/config"
	"github.com/kouper/carechat/style"
)

var flagForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Create <config-dir>/config.yaml with the backend address currently in effect
(--url, $CARECHAT_URL or the build default) and the default logging settings.
An existing file is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir := configDir()
	path := filepath.Join(dir, "config.yaml")
	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err == nil && !flagForce {
		fmt.Fprintln(out, "Config already exists at:", path)
		fmt.Fprintln(out, "Edit it directly or rerun with --force.")
		return nil
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	if flagURL != "" {
		cfg.BackendURL = flagURL
	}
	if cfg.BackendURL == "" {
		cfg.BackendURL = client.DefaultBaseURL
	}
	if err := config.Save(dir, cfg); err != nil {
		return err
	}
	fmt.Fprintln(out, style.SuccessText.Render("Wrote "+path))
	return nil
}
