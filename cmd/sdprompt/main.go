package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"codeberg.org/snonux/sdprompt/internal/cli"
	"codeberg.org/snonux/sdprompt/internal/gui"
	"codeberg.org/snonux/sdprompt/internal/logging"
	"codeberg.org/snonux/sdprompt/internal/models"
	"codeberg.org/snonux/sdprompt/internal/processor"
	"codeberg.org/snonux/sdprompt/internal/session"
	"codeberg.org/snonux/sdprompt/internal/settings"
	"codeberg.org/snonux/sdprompt/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
		}
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	logger, err := logging.NewLogger(viper.GetString(cli.KeyLogLevel), viper.GetString(cli.KeyLogFile))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	// Handle --list-models flag
	if flags.ListModels {
		openaiSettings := settings.Load(viper.GetString(cli.KeySettingsFile), settings.ProviderOpenAI, logger)
		lister := models.NewLister(openaiSettings.OpenAIKey)
		return lister.ListAvailableModels(context.Background(), cmd.OutOrStdout())
	}

	guiMode := len(args) == 0 && flags.KeywordsFile == ""

	var sink *gui.LogSink
	if guiMode {
		sink = gui.NewLogSink()
		logger = logging.Tee(logger, sink, viper.GetString(cli.KeyLogLevel))
	}

	cfg := settings.Load(viper.GetString(cli.KeySettingsFile), viper.GetString(cli.KeyProvider), logger)
	client := translation.NewClient(translation.New(cfg, logger), logger)
	store := session.NewStore(viper.GetString(cli.KeyWorkFile), logger)

	// Create processor
	proc := processor.NewProcessor(flags, client, store, logger)

	if guiMode {
		// No input provided - launch GUI mode by default
		return proc.RunGUIMode(sink)
	}

	keywords, err := proc.CollectKeywords(args)
	if err != nil {
		return err
	}

	// Without --fixed the saved session's fixed text is used
	fixedText := flags.FixedText
	if !cmd.Flags().Changed("fixed") {
		fixedText = store.Load().FixedText
	}

	logger.Debug("Running headless", zap.Int("keywords", len(keywords)))
	return proc.ProcessCLI(context.Background(), fixedText, keywords, cmd.OutOrStdout())
}
