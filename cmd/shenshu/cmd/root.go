// Package cmd contains all CLI commands for shenshu.
package cmd

import (
	"errors"
	"fmt"

	"github.com/f3rmion/shenshu/internal/config"
	"github.com/f3rmion/shenshu/internal/shenshu"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile   string
	configErr error

	appConfig *config.Config
	logger    = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shenshu",
	Short: "巧連神數 name divination and 八字 birth charts",
	Long: `shenshu casts a 巧連神數 reading for a Chinese name and draws up
生辰八字 birth charts.

A name of one to three characters is converted to traditional script, its
stroke counts are weighted by position (x100, x10, x1) and the sum mod 215
selects one of 215 courses, each with a hexagram and its interpretation.

Running 'shenshu' without arguments launches the interactive TUI.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/shenshu/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().Duration("delay", config.DefaultDelay, "busy window before the TUI reveals a reading")

	viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag(config.KeyDelay, rootCmd.PersistentFlags().Lookup("delay"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	configErr = nil

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if dir, err := config.GetConfigDir(); err == nil {
		viper.AddConfigPath(dir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SHENSHU")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
		}
	}
}

// setup loads the typed config and builds the logger. The TUI gets a no-op
// logger so log lines do not tear the alternate screen.
func setup(cmd *cobra.Command, args []string) error {
	if configErr != nil {
		return configErr
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	appConfig = cfg

	if !cmd.HasParent() || cmd.Name() == "interactive" {
		logger = zap.NewNop()
		return nil
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	logger.Debug("Config loaded",
		zap.String("file", viper.ConfigFileUsed()),
		zap.Duration("delay", cfg.Delay),
		zap.String("signs_file", cfg.SignsFile))
	return nil
}

// newDiviner builds the pipeline with the configured course table.
func newDiviner() (*shenshu.Diviner, error) {
	table, err := appConfig.LoadSigns()
	if err != nil {
		return nil, err
	}
	return shenshu.NewDiviner(
		shenshu.WithSigns(table),
		shenshu.WithLogger(logger),
	), nil
}
