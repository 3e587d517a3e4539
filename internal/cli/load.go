package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"yaml2rogue/internal/diagnostic"
	"yaml2rogue/internal/model"
	"yaml2rogue/internal/schema"
)

// InputExtension is the extension of schema documents.
const InputExtension = ".yaml"

// loaded is a resolved input document.
type loaded struct {
	Path  string
	Doc   *model.Document
	Diags diagnostic.Diagnostics
}

// load validates the module name and input directory, then parses and
// resolves <dir>/<module>.yaml.
func load(module, dir string) (*loaded, error) {
	if module == "" {
		return nil, fmt.Errorf("%w: module name is required (--%s)", ErrConfiguration, FlagModule)
	}

	if module == "." || module == ".." || strings.ContainsAny(module, `/\`) {
		return nil, fmt.Errorf("%w: module name %q must not be a path", ErrConfiguration, module)
	}

	if err := requireDir(dir); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, module+InputExtension)

	info, err := os.Stat(path)

	switch {
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: yaml file %q doesn't exist", ErrNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	case info.IsDir():
		return nil, fmt.Errorf("%w: %q is a directory", ErrNotFound, path)
	}

	doc, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}

	resolved, diags, err := model.Build(doc, model.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	return &loaded{Path: path, Doc: resolved, Diags: diags}, nil
}

func requireDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: directory %q doesn't exist", ErrConfiguration, dir)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %q is not a directory", ErrConfiguration, dir)
	}

	return nil
}

// report logs every diagnostic at the level matching its severity.
func report(ctx context.Context, logger *slog.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		attrs := []slog.Attr{slog.String("code", d.Code)}

		if d.Module != "" {
			attrs = append(attrs, slog.String("module", d.Module))
		}

		if d.Child != "" {
			attrs = append(attrs, slog.String("child", d.Child))
		}

		if d.Line > 0 {
			attrs = append(attrs, slog.Int("line", d.Line))
		}

		if len(d.Suggestions) > 0 {
			attrs = append(attrs, slog.Any("suggestions", d.Suggestions))
		}

		logger.LogAttrs(ctx, severityLevel(d.Severity), d.Message, attrs...)
	}
}

func severityLevel(s diagnostic.Severity) slog.Level {
	switch s {
	case diagnostic.SeverityError:
		return slog.LevelError
	case diagnostic.SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
