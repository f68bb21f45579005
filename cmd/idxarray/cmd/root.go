package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/idxarray/tablestore"
)

// Execute runs the idxarray command line.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries configuration shared by the subcommands.
type app struct {
	v *viper.Viper
}

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:          "idxarray",
		Short:        "Inspect index array snapshots",
		Long:         "CLI for inspecting and comparing index array snapshots in a local directory, MinIO, or S3.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ~/.config/idxarray/config.yaml)")
	flags.String("store", ".", "table store: directory, s3://bucket/prefix, or minio://endpoint/bucket/prefix")
	flags.String("type", "any", "element type: "+fmt.Sprint(elementTypes))
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.Int64("cache-size", 0, "bytes of remote blobs to cache in memory (0 disables)")
	flags.Bool("minio-insecure", false, "connect to MinIO without TLS")

	_ = a.v.BindPFlag("store", flags.Lookup("store"))
	_ = a.v.BindPFlag("type", flags.Lookup("type"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("cache_size", flags.Lookup("cache-size"))
	_ = a.v.BindPFlag("minio_insecure", flags.Lookup("minio-insecure"))

	rootCmd.AddCommand(
		a.newListCmd(),
		a.newInspectCmd(),
		a.newGetCmd(),
		a.newDumpCmd(),
		a.newDiffCmd(),
	)
	return rootCmd
}

func (a *app) initConfig(cmd *cobra.Command) error {
	if cfg, _ := cmd.Flags().GetString("config"); cfg != "" {
		a.v.SetConfigFile(cfg)
	} else {
		a.v.AddConfigPath(configDir())
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("IDXARRAY")
	a.v.AutomaticEnv()
	_ = a.v.BindEnv("minio_access_key", "IDXARRAY_MINIO_ACCESS_KEY", "MINIO_ACCESS_KEY")
	_ = a.v.BindEnv("minio_secret_key", "IDXARRAY_MINIO_SECRET_KEY", "MINIO_SECRET_KEY")

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "idxarray")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "idxarray")
	}
	return ".idxarray"
}

func (a *app) logger() (*tablestore.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log_level"))); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return tablestore.NewTextLogger(level), nil
}
