package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/sdprompt/internal"
)

// Viper keys shared between flags and the YAML config file
const (
	KeySettingsFile = "settings.file"
	KeyWorkFile     = "session.file"
	KeyProvider     = "translator.provider"
	KeyLogLevel     = "log.level"
	KeyLogFile      = "log.file"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sdprompt [keyword...]",
		Short: "Stable Diffusion Prompt Generator",
		Long: `sdprompt builds weighted image-generation prompts from Japanese keywords.

Keywords are wrapped in parentheses, translated to English and joined into a
prompt such as "(masterpiece), (blue sky:1.2)". A keyword may carry a weight
after its last colon.

Examples:
  sdprompt                              # Launch the prompt editor (default)
  sdprompt 猫 青い空:1.2                 # Print a prompt for the given keywords
  sdprompt --keywords-file words.txt    # Read keywords from a file, one per line
  sdprompt --list-models                # Show OpenAI models for OPENAI_MODEL`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.sdprompt.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.SettingsFile, "settings", flags.SettingsFile, "Translation settings file (JSON)")
	cmd.Flags().StringVar(&flags.WorkFile, "work-file", flags.WorkFile, "Session work file (JSON)")
	cmd.Flags().StringVar(&flags.FixedText, "fixed", "", "Fixed text prepended to the keywords, one keyword per line (default: saved session)")
	cmd.Flags().StringVar(&flags.KeywordsFile, "keywords-file", "", "Read keywords from file (one per line)")
	cmd.Flags().StringVar(&flags.Provider, "provider", "", "Translation provider: azure, openai, gemini (default: from settings file)")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List OpenAI chat models usable for translation")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "Write logs to file instead of stderr")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag(KeySettingsFile, cmd.Flags().Lookup("settings"))
	viper.BindPFlag(KeyWorkFile, cmd.Flags().Lookup("work-file"))
	viper.BindPFlag(KeyProvider, cmd.Flags().Lookup("provider"))
	viper.BindPFlag(KeyLogLevel, cmd.Flags().Lookup("log-level"))
	viper.BindPFlag(KeyLogFile, cmd.Flags().Lookup("log-file"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".sdprompt" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sdprompt")
	}

	// Environment variables
	viper.SetEnvPrefix("SDPROMPT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
