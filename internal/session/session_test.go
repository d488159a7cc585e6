package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	store := NewStore(path, nil)

	want := Session{
		FixedText:      "masterpiece\n高品質",
		Keywords:       "猫:1.2\n犬",
		Output:         "(masterpiece), (high quality), (cat:1.2), (dog)",
		WindowGeometry: "640x480+120+80",
	}

	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if got := store.Load(); got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	store := NewStore(path, nil)

	if err := store.Save(Session{FixedText: "猫 & <犬>"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read work file: %v", err)
	}

	text := string(content)
	if !strings.Contains(text, `"fixed_text": "猫 & <犬>"`) {
		t.Errorf("Expected unescaped, indented fixed_text, got:\n%s", text)
	}
	for _, key := range []string{`"keywords"`, `"output"`, `"window_geometry"`} {
		if !strings.Contains(text, "\n  "+key) {
			t.Errorf("Expected key %s indented by two spaces, got:\n%s", key, text)
		}
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	store := NewStore(path, nil)

	if err := store.Save(Session{Keywords: "a long keyword list that is longer"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(Session{Keywords: "short"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if got := store.Load(); got.Keywords != "short" {
		t.Errorf("Keywords = %q, want short", got.Keywords)
	}
}

func TestSaveInvalidPath(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing-dir", DefaultFile), nil)
	if err := store.Save(Session{}); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestLoadDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		message string
	}{
		{name: "missing file", message: "No previous work found"},
		{name: "corrupt json", content: ptr(`{"fixed_text": `), message: "Error decoding the work file, please check the JSON format"},
		{name: "wrong type", content: ptr(`{"fixed_text": 42}`), message: "Error decoding the work file, please check the JSON format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFile)
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0644); err != nil {
					t.Fatalf("Failed to write work file: %v", err)
				}
			}

			core, logs := observer.New(zapcore.DebugLevel)
			got := NewStore(path, zap.New(core)).Load()

			if got != (Session{}) {
				t.Errorf("Expected empty session, got %+v", got)
			}
			if logs.FilterMessage(tt.message).Len() != 1 {
				t.Errorf("Expected %q to be logged, got %v", tt.message, logs.All())
			}
		})
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte(`{"keywords": "猫"}`), 0644); err != nil {
		t.Fatalf("Failed to write work file: %v", err)
	}

	got := NewStore(path, nil).Load()
	if got != (Session{Keywords: "猫"}) {
		t.Errorf("Load() = %+v, want only keywords set", got)
	}
}

func ptr(s string) *string {
	return &s
}
