// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key name and the
// file contents (trimmed) are the value.
//
// Supported key files: brandcraft-api-key (bearer token required by the HTTP API).
package secrets

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// APIKeyName is the file holding the HTTP API bearer token.
const APIKeyName = "brandcraft-api-key"

// Secrets maps key names to values.
type Secrets map[string]string

// Load reads all files in dir and returns their trimmed contents by filename.
// A missing directory is not an error; Load returns an empty set.
// Unreadable files are logged as warnings and skipped.
func Load(dir string, logger *zap.Logger) (Secrets, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(Secrets)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("could not read secret", zap.String("name", name), zap.Error(err))
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Get returns the value for key, or fallback when fallback is non-empty.
// Explicit configuration wins over files.
func (s Secrets) Get(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return s[key]
}

// Names returns the loaded key names, sorted, without their values.
func (s Secrets) Names() []string {
	return slices.Sorted(maps.Keys(s))
}
