package msgcat

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yml
var defaultFiles embed.FS

var ErrUnknownKey = errors.New("unknown message key")

// Catalog - message templates keyed by flattened dot keys ("ttt.welcome").
type Catalog struct {
	logger    *slog.Logger
	templates map[string]*template.Template
}

// New loads the embedded messages, then applies overrides from dir if set.
func New(logger *slog.Logger, overrideDir string) (*Catalog, error) {
	catalog := &Catalog{
		logger:    logger.With("component", "msgcat"),
		templates: make(map[string]*template.Template),
	}

	raw, err := fs.ReadFile(defaultFiles, "messages.yml")
	if err != nil {
		return nil, fmt.Errorf("read embedded messages: %w", err)
	}

	if err = catalog.apply(raw); err != nil {
		return nil, fmt.Errorf("parse embedded messages: %w", err)
	}

	if strings.TrimSpace(overrideDir) != "" {
		if err = catalog.applyDir(overrideDir); err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

// MustDefault returns the embedded catalog without logging and panics if it
// does not parse.
func MustDefault() *Catalog {
	catalog, err := New(slog.New(slog.NewJSONHandler(io.Discard, nil)), "")
	if err != nil {
		panic(err)
	}

	return catalog
}

// Render executes the template under key; missing data keys are errors.
func (that *Catalog) Render(key string, data map[string]any) (string, error) {
	tmpl, ok := that.templates[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s: %w", key, err)
	}

	return sb.String(), nil
}

// Text is Render that falls back to the bare key, for display paths.
// Render failures are logged.
func (that *Catalog) Text(key string, data map[string]any) string {
	text, err := that.Render(key, data)
	if err != nil {
		that.logger.Warn("failed to render message", "key", key, "error", err)
		return key
	}

	return text
}

func (that *Catalog) Keys() []string {
	keys := make([]string, 0, len(that.templates))
	for key := range that.templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

func (that *Catalog) applyDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read messages dir: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yml" || ext == ".yaml" {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		if err = that.apply(raw); err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
	}

	return nil
}

func (that *Catalog) apply(raw []byte) error {
	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return err
	}

	flat := make(map[string]string)
	if err := flatten(tree, "", flat); err != nil {
		return err
	}

	for key, text := range flat {
		tmpl, err := template.New(key).Option("missingkey=error").Parse(text)
		if err != nil {
			return fmt.Errorf("template %s: %w", key, err)
		}
		that.templates[key] = tmpl
	}

	return nil
}

func flatten(src any, prefix string, out map[string]string) error {
	switch v := src.(type) {
	case map[string]any:
		for k, child := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}

			if err := flatten(child, key, out); err != nil {
				return err
			}
		}
		return nil
	case string:
		out[prefix] = v
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported value at %q: %T", prefix, src)
	}
}
