package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/username/tricalendar/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	v          *viper.Viper
	cfg        *config.Config
	logger     = zap.NewNop()
	stdout     io.Writer = os.Stdout
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v = config.New()

	rootCmd := &cobra.Command{
		Use:           "tricalendar",
		Short:         "Three-month printable calendar generator",
		Long:          "Lay out three consecutive months side by side and write the calendar as a LaTeX document",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(cmd); err != nil {
				return err
			}

			var err error
			cfg, err = config.LoadWith(v, configPath)
			if err != nil {
				return err
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					logger = initLogger(cfg.Log.Level) // Fallback to console
				}
			} else {
				logger = initLogger(cfg.Log.Level)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml if present)")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file with rotation")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(gridCmd())

	return rootCmd
}

// addCalendarFlags registers the flags describing the three months
func addCalendarFlags(cmd *cobra.Command) {
	cmd.Flags().String("start", "", "Weekday of the first month's day 1 (0-6 with Monday=0, or a name)")
	cmd.Flags().StringArray("month", nil, "Month as NAME:DAYS, repeat three times in order")
	cmd.Flags().String("separators", "", "Row rule policy: shared or boxed")
}

// bindFlags binds the executing command's flags into viper, so only flags the
// user actually set override config file values
func bindFlags(cmd *cobra.Command) error {
	bindings := map[string]string{
		"log-file":   "log.file",
		"log-level":  "log.level",
		"start":      "calendar.start_weekday",
		"separators": "layout.separators",
		"output":     "output.file",
	}
	for flag, key := range bindings {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", flag, err)
			}
		}
	}

	if f := cmd.Flags().Lookup("month"); f != nil && f.Changed {
		values, err := cmd.Flags().GetStringArray("month")
		if err != nil {
			return err
		}
		months := make([]map[string]interface{}, 0, len(values))
		for _, value := range values {
			mc, err := config.ParseMonthFlag(value)
			if err != nil {
				return err
			}
			months = append(months, map[string]interface{}{"name": mc.Name, "days": mc.Days})
		}
		v.Set("calendar.months", months)
	}

	return nil
}

func initLogger(level string) *zap.Logger {
	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.Level = zap.NewAtomicLevelAt(parseLevel(level))

	l, err := zapConfig.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return l
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core), nil
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}
