package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"SettingsFile", flags.SettingsFile, "setting.json"},
		{"WorkFile", flags.WorkFile, "work.json"},
		{"LogLevel", flags.LogLevel, "info"},
		{"ListModels", flags.ListModels, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"FixedText", flags.FixedText},
		{"KeywordsFile", flags.KeywordsFile},
		{"Provider", flags.Provider},
		{"LogFile", flags.LogFile},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}

func TestFlagsStructure(t *testing.T) {
	// Test that Flags struct has all expected fields
	flagsType := reflect.TypeOf(Flags{})

	expectedFields := []string{
		"CfgFile", "SettingsFile", "WorkFile",
		"FixedText", "KeywordsFile", "Provider",
		"ListModels", "LogLevel", "LogFile",
	}

	for _, fieldName := range expectedFields {
		t.Run("has_field_"+fieldName, func(t *testing.T) {
			if _, ok := flagsType.FieldByName(fieldName); !ok {
				t.Errorf("Flags struct missing field: %s", fieldName)
			}
		})
	}
}
