// Command naisite runs the Nurse Assist International website.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nurseassist/naisite"
	"github.com/nurseassist/naisite/leads"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	configFile string
	dev        bool
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "naisite",
	Short:         "Nurse Assist International website",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if dev {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return loadConfig()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the naisite version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "naisite %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&dev, "dev", false, "human-readable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads config.yaml (optional) and NAI_* environment variables.
// Nested keys map to env names with dots replaced, e.g. smtp.host is
// NAI_SMTP_HOST.
func loadConfig() error {
	viper.SetEnvPrefix("NAI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("addr", ":3000")
	viper.SetDefault("database_path", "data/site.db")
	viper.SetDefault("analytics.enabled", true)
	viper.SetDefault("analytics.database_path", "data/analytics.db")
	viper.SetDefault("analytics.retention_days", 365)
	viper.SetDefault("static_dir", "public")
	viper.SetDefault("cache_ttl", "5m")
	viper.SetDefault("cookie_secure", false)
	viper.SetDefault("smtp.port", 587)

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		logger.Info("config loaded", zap.String("file", viper.ConfigFileUsed()))
	}
	return nil
}

func siteConfig() naisite.SiteConfig {
	return naisite.SiteConfig{
		URL:                    viper.GetString("url"),
		Addr:                   viper.GetString("addr"),
		DatabasePath:           viper.GetString("database_path"),
		AnalyticsEnabled:       viper.GetBool("analytics.enabled"),
		AnalyticsDatabasePath:  viper.GetString("analytics.database_path"),
		AnalyticsRetentionDays: viper.GetInt("analytics.retention_days"),
		AdminPassword:          viper.GetString("admin_password"),
		SessionSecret:          viper.GetString("session_secret"),
		ChallengeSecret:        viper.GetString("challenge_secret"),
		CookieSecure:           viper.GetBool("cookie_secure"),
		AssetBaseURL:           viper.GetString("asset_base_url"),
		ArticleCacheTTL:        viper.GetDuration("cache_ttl"),
		SMTP: leads.SMTPConfig{
			Host:     viper.GetString("smtp.host"),
			Port:     viper.GetInt("smtp.port"),
			Username: viper.GetString("smtp.username"),
			Password: viper.GetString("smtp.password"),
			From:     viper.GetString("smtp.from"),
			To:       viper.GetStringSlice("smtp.to"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
