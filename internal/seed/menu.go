package seed

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"animated-nav/pkg/logger"
	"animated-nav/pkg/navigation"
	"animated-nav/pkg/validator"
)

//go:embed data/menu/*.json
var defaultMenuFS embed.FS

var ErrNoDefinitions = errors.New("no navigation items defined")

type menuDefinition struct {
	ID        string `json:"id" validate:"required,slug"`
	Label     string `json:"label" validate:"no_html"`
	Accent    bool   `json:"accent"`
	Highlight bool   `json:"highlight"`
}

// DefaultMenuFS returns the embedded menu definitions.
func DefaultMenuFS() fs.FS {
	sub, err := fs.Sub(defaultMenuFS, "data/menu")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadRegistry builds the navigation registry from the *.json definitions in
// dataFS, falling back to the embedded definitions when dataFS is nil. Broken
// files and definitions are logged and skipped unless strict is set.
func LoadRegistry(dataFS fs.FS, strict bool) (*navigation.Registry, error) {
	if dataFS == nil {
		dataFS = DefaultMenuFS()
	}

	items, err := LoadDefinitions(dataFS)
	if err != nil {
		if strict {
			return nil, err
		}
		logger.Warn("Skipped invalid navigation definitions", map[string]interface{}{"error": err.Error()})
	}

	if len(items) == 0 {
		return nil, ErrNoDefinitions
	}

	registry, err := navigation.NewRegistry(items)
	if err != nil {
		return nil, err
	}

	logger.Info("Navigation registry loaded", map[string]interface{}{"items": registry.Len()})
	return registry, nil
}

// LoadDefinitions parses every *.json file in dataFS in name order. Valid
// items are returned alongside the joined errors of everything skipped.
func LoadDefinitions(dataFS fs.FS) ([]navigation.Item, error) {
	entries, err := fs.ReadDir(dataFS, ".")
	if err != nil {
		return nil, fmt.Errorf("read menu definitions: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var (
		items []navigation.Item
		errs  []error
	)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".json") {
			continue
		}

		data, readErr := fs.ReadFile(dataFS, name)
		if readErr != nil {
			logger.Error(readErr, "Failed to read menu definition", map[string]interface{}{"file": name})
			errs = append(errs, fmt.Errorf("read menu definition %s: %w", name, readErr))
			continue
		}

		definitions, parseErr := parseMenuDefinitions(data)
		if parseErr != nil {
			logger.Error(parseErr, "Failed to parse menu definition", map[string]interface{}{"file": name})
			errs = append(errs, fmt.Errorf("parse menu definition %s: %w", name, parseErr))
			continue
		}

		for position, definition := range definitions {
			definition.ID = strings.TrimSpace(definition.ID)
			if err := validator.Validate(definition); err != nil {
				logger.Error(err, "Invalid menu definition", map[string]interface{}{"file": name, "position": position})
				errs = append(errs, fmt.Errorf("menu definition %s[%d]: %w", name, position, err))
				continue
			}

			items = append(items, navigation.Item{
				ID:        definition.ID,
				Label:     definition.Label,
				Accent:    definition.Accent,
				Highlight: definition.Highlight,
			})
		}
	}

	return items, errors.Join(errs...)
}

func parseMenuDefinitions(data []byte) ([]menuDefinition, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var definitions []menuDefinition
		if err := json.Unmarshal(trimmed, &definitions); err != nil {
			return nil, err
		}
		return definitions, nil
	}

	var definition menuDefinition
	if err := json.Unmarshal(trimmed, &definition); err != nil {
		return nil, err
	}

	return []menuDefinition{definition}, nil
}
