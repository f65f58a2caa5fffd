package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rleclezio/digital-twin/core/config"
	"github.com/rleclezio/digital-twin/pkg/utils"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "digital-twin",
	Short: "AI digital twin chat API",
	Long: `Serves the chat endpoint behind a personal website's digital twin widget:
a persona-briefed language model grounded in a local knowledge base.`,
}

func init() {
	// Load environment variables first
	utils.LoadConfig(".")

	time.Local = time.UTC

	if _, err := config.LoadConfig(); err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Initialize flags first, before any subcommands are added
	initFlags()

	// Then initialize other components
	cobra.OnInitialize(initEnvConfig, initApp)
}

// initEnvConfig applies viper-visible overrides on top of the loaded config
func initEnvConfig() {
	if envPort := viper.GetString("app_port"); envPort != "" {
		config.Global.App.Port = envPort
	}
	if viper.IsSet("app_debug") && viper.GetBool("app_debug") {
		config.Global.App.Debug = true
	}
	if envDir := viper.GetString("knowledge_dir"); envDir != "" {
		config.Global.Knowledge.Dir = envDir
	}
	if envProvider := viper.GetString("ai_provider"); envProvider != "" {
		config.Global.AI.Provider = envProvider
	}
	if envModel := viper.GetString("ai_model"); envModel != "" {
		config.Global.AI.Model = envModel
	}
	if envBackend := viper.GetString("session_backend"); envBackend != "" {
		config.Global.Session.Backend = envBackend
	}
}

func initFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&config.Global.App.Port,
		"port", "p",
		config.Global.App.Port,
		"change port number with --port <number> | example: --port=8080",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&config.Global.App.Debug,
		"debug", "d",
		config.Global.App.Debug,
		"hide or displaying log with --debug <true/false> | example: --debug=true",
	)
	rootCmd.PersistentFlags().StringVarP(
		&config.Global.Knowledge.Dir,
		"knowledge-dir", "k",
		config.Global.Knowledge.Dir,
		`directory of knowledge documents --knowledge-dir <string> | example: --knowledge-dir="data"`,
	)
	rootCmd.PersistentFlags().StringVarP(
		&config.Global.AI.Provider,
		"provider", "",
		config.Global.AI.Provider,
		`inference provider --provider <openai|gemini|anthropic>`,
	)
	rootCmd.PersistentFlags().StringVarP(
		&config.Global.AI.Model,
		"model", "m",
		config.Global.AI.Model,
		`model identifier --model <string> | example: --model="gpt-4o-mini"`,
	)
	rootCmd.PersistentFlags().StringVarP(
		&config.Global.Session.Backend,
		"session-backend", "",
		config.Global.Session.Backend,
		`session store backend --session-backend <memory|valkey>`,
	)
}

func initApp() {
	if config.Global.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
