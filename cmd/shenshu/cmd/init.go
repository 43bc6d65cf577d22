package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/shenshu/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize shenshu configuration",
	Long: `Initialize shenshu configuration files in your config directory.

This creates:
  - config.yaml  (delay, signs_file)
  - signs.yaml   (the built-in course table, ready to edit)

Point signs_file at the edited signs.yaml to use your own table.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
	initCmd.Flags().String("dir", "", "config directory (default is $HOME/.config/shenshu)")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		var err error
		if dir, err = config.GetConfigDir(); err != nil {
			return fmt.Errorf("finding config directory: %w", err)
		}
	}

	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config already exists: %s\nUse --force to overwrite", configPath)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing shenshu configuration in %s\n\n", dir)

	cfg := config.Default()
	if err := config.Save(configPath, cfg); err != nil {
		return err
	}
	fmt.Fprintln(out, "  Created config.yaml")

	table, err := appConfig.LoadSigns()
	if err != nil {
		return err
	}
	if err := config.ExportSigns(filepath.Join(dir, "signs.yaml"), table); err != nil {
		return err
	}
	fmt.Fprintln(out, "  Created signs.yaml")

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit signs.yaml and set signs_file in config.yaml to use it")
	fmt.Fprintln(out, "  2. Run 'shenshu divine <name>' to cast a reading")

	return nil
}
