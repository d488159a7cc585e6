// Package session persists the last working state of the prompt editor:
// the three text fields and the window geometry.
package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// DefaultFile is the work file looked up in the working directory
const DefaultFile = "work.json"

// Session is a snapshot of the editor. WindowGeometry is opaque here and is
// interpreted by the GUI only.
type Session struct {
	FixedText      string `json:"fixed_text"`
	Keywords       string `json:"keywords"`
	Output         string `json:"output"`
	WindowGeometry string `json:"window_geometry"`
}

// Store reads and writes a session file
type Store struct {
	path   string
	logger *zap.Logger
}

// NewStore creates a store for the work file at path
func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the work file location
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved session. A missing or malformed file yields an
// empty session; both cases are logged.
func (s *Store) Load() Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info("No previous work found", zap.String("path", s.path))
		} else {
			s.logger.Warn("Failed to read the work file", zap.String("path", s.path), zap.Error(err))
		}
		return Session{}
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.logger.Warn("Error decoding the work file, please check the JSON format",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return Session{}
	}

	return sess
}

// Save overwrites the work file with sess. The write is not atomic.
func (s *Store) Save(sess Session) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sess); err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write work file: %w", err)
	}

	s.logger.Debug("Session saved", zap.String("path", s.path))
	return nil
}
