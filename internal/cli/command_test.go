package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "sdprompt [keyword...]" {
		t.Errorf("Expected Use to be 'sdprompt [keyword...]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Stable Diffusion Prompt Generator") {
		t.Errorf("Expected Short description to contain 'Stable Diffusion Prompt Generator'")
	}

	// Test that flags are set up
	flagNames := []string{
		"config",
		"settings",
		"work-file",
		"fixed",
		"keywords-file",
		"provider",
		"list-models",
		"log-level",
		"log-file",
	}

	for _, name := range flagNames {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}
}

func TestCreateRootCommand_AcceptsKeywords(t *testing.T) {
	cmd := CreateRootCommand(NewFlags())

	if cmd.Args == nil {
		t.Fatal("Expected an argument validator")
	}
	if err := cmd.Args(cmd, []string{"猫", "青い空:1.2", "夕焼け"}); err != nil {
		t.Errorf("Expected any number of keyword arguments, got error: %v", err)
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	defaults := map[string]string{
		"settings":    "setting.json",
		"work-file":   "work.json",
		"log-level":   "info",
		"provider":    "",
		"list-models": "false",
	}

	for name, want := range defaults {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("%s flag not found", name)
		}
		if flag.DefValue != want {
			t.Errorf("Expected default %s to be %q, got %q", name, want, flag.DefValue)
		}
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		check     func(t *testing.T)
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				cfgPath := filepath.Join(t.TempDir(), "test-config.yaml")
				content := `settings:
  file: /test/setting.json
log:
  level: debug`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
			check: func(t *testing.T) {
				if got := viper.GetString(KeySettingsFile); got != "/test/setting.json" {
					t.Errorf("Expected %s to be /test/setting.json, got %s", KeySettingsFile, got)
				}
				if got := viper.GetString(KeyLogLevel); got != "debug" {
					t.Errorf("Expected %s to be debug, got %s", KeyLogLevel, got)
				}
			},
		},
		{
			name: "without config file",
			setupFunc: func(t *testing.T) string {
				t.Setenv("HOME", t.TempDir())
				return ""
			},
			check: func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			InitConfig(tt.setupFunc(t))
			tt.check(t)

			// Test environment variable prefix and nested key mapping
			t.Setenv("SDPROMPT_TEST_VAR", "test-value")
			t.Setenv("SDPROMPT_LOG_FILE", "/tmp/sdprompt.log")

			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}
			if viper.GetString(KeyLogFile) != "/tmp/sdprompt.log" {
				t.Errorf("Expected %s from environment, got %q", KeyLogFile, viper.GetString(KeyLogFile))
			}
		})
	}
}

func TestBindFlagsToViper(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	// Reset viper
	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.Flags().Set("settings", "/test/setting.json")
	cmd.Flags().Set("work-file", "/test/work.json")
	cmd.Flags().Set("provider", "openai")

	bindFlagsToViper(cmd)

	// Test that values are bound
	expected := map[string]string{
		KeySettingsFile: "/test/setting.json",
		KeyWorkFile:     "/test/work.json",
		KeyProvider:     "openai",
		KeyLogLevel:     "info",
	}
	for key, want := range expected {
		if got := viper.GetString(key); got != want {
			t.Errorf("Expected %s to be %s, got %s", key, want, got)
		}
	}
}
