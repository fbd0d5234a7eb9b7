package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Zachkp/portfolio/internal/config"
)

var (
	cfgFile   string
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Single-page portfolio site",
	Long: `portfolio serves a single-page portfolio: hero, about and experience
timeline, filterable project gallery, skills panel and a contact form.
Navigation state is tracked on the server from the page's scroll reports.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./portfolio.yaml)")
	rootCmd.PersistentFlags().String("content", "", "content file (default is the built-in content)")
}

func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	for key, value := range config.Defaults() {
		v.SetDefault(key, value)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// PORT is what most hosts set; PORTFOLIO_PORT still wins.
	if port := os.Getenv("PORT"); port != "" {
		v.SetDefault("port", port)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	}

	if f := cmd.Flags().Lookup("content"); f != nil {
		if err := v.BindPFlag("contentFile", f); err != nil {
			return err
		}
	}
	if f := cmd.Flags().Lookup("port"); f != nil {
		if err := v.BindPFlag("port", f); err != nil {
			return err
		}
	}
	if f := cmd.Flags().Lookup("mode"); f != nil {
		if err := v.BindPFlag("mode", f); err != nil {
			return err
		}
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return appConfig.Validate()
}
