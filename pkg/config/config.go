package config

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dotmerge/pkg/errors"
	"github.com/arthur-debert/dotmerge/pkg/paths"
	"github.com/arthur-debert/dotmerge/pkg/provision"
	"github.com/arthur-debert/dotmerge/pkg/types"
)

// Config is the complete dotmerge configuration
type Config struct {
	Platform  Platform           `koanf:"platform" toml:"platform" yaml:"platform"`
	Backup    Backup             `koanf:"backup" toml:"backup" yaml:"backup"`
	Packages  []string           `koanf:"packages" toml:"packages" yaml:"packages"`
	Installer Installer          `koanf:"installer" toml:"installer" yaml:"installer"`
	Plugins   []provision.Plugin `koanf:"plugins" toml:"plugins" yaml:"plugins"`
	PluginDir string             `koanf:"plugin_dir" toml:"plugin_dir" yaml:"plugin_dir"`
	Files     []File             `koanf:"files" toml:"files" yaml:"files"`
}

// Platform restricts the hosts dotmerge runs on
type Platform struct {
	Require []string `koanf:"require" toml:"require" yaml:"require"`
}

// Backup controls per-run backups
type Backup struct {
	Enabled bool `koanf:"enabled" toml:"enabled" yaml:"enabled"`
}

// Installer configures the package manager collaborator
type Installer struct {
	Command string `koanf:"command" toml:"command" yaml:"command"`
}

// File is one target file and its ordered steps
type File struct {
	Path  string `koanf:"path" toml:"path" yaml:"path"`
	Steps []Step `koanf:"steps" toml:"steps" yaml:"steps"`
}

// Step types
const (
	StepFragment = string(types.OperationFragment)
	StepField    = string(types.OperationField)
)

// Step is a fragment or a field, told apart by Type
type Step struct {
	Type string `koanf:"type" toml:"type" yaml:"type"`

	// fragment
	Content string `koanf:"content" toml:"content,omitempty" yaml:"content,omitempty"`
	Comment string `koanf:"comment" toml:"comment,omitempty" yaml:"comment,omitempty"`
	Marker  string `koanf:"marker" toml:"marker,omitempty" yaml:"marker,omitempty"`

	// field
	Name   string   `koanf:"name" toml:"name,omitempty" yaml:"name,omitempty"`
	Kind   string   `koanf:"kind" toml:"kind,omitempty" yaml:"kind,omitempty"`
	Value  string   `koanf:"value" toml:"value,omitempty" yaml:"value,omitempty"`
	Values []string `koanf:"values" toml:"values,omitempty" yaml:"values,omitempty"`
}

// Validate checks the worklist. Errors are CONFIG_INVALID and name the
// offending file and step by index.
func (c *Config) Validate() error {
	for i, f := range c.Files {
		if strings.TrimSpace(f.Path) == "" {
			return invalid(i, -1, "file has no path")
		}
		for j, s := range f.Steps {
			switch s.Type {
			case StepFragment:
				if trimContent(s.Content) == "" {
					return invalid(i, j, "fragment has no content")
				}
			case StepField:
				if s.Name == "" {
					return invalid(i, j, "field has no name")
				}
				if !types.ValueKind(s.Kind).Valid() {
					return invalid(i, j, "field kind must be scalar or set, got %q", s.Kind)
				}
			default:
				return invalid(i, j, "unknown step type %q", s.Type)
			}
		}
	}
	for i, p := range c.Plugins {
		if p.Name == "" || p.URL == "" {
			return errors.Newf(errors.ErrConfigValid, "plugins[%d]: name and url are required", i).
				WithDetail("plugin", i)
		}
	}
	return nil
}

func invalid(file, step int, format string, args ...interface{}) error {
	where := fmt.Sprintf("files[%d]", file)
	if step >= 0 {
		where += fmt.Sprintf(".steps[%d]", step)
	}
	return errors.Newf(errors.ErrConfigValid, where+": "+format, args...).
		WithDetail("file", file).
		WithDetail("step", step)
}

// Targets converts the worklist into absolute targets with their
// operations. Fragment text loses trailing newlines.
func (c *Config) Targets() ([]types.Target, error) {
	targets := make([]types.Target, 0, len(c.Files))
	for i, f := range c.Files {
		path, err := paths.Abs(f.Path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "files[%d]: invalid path %q", i, f.Path)
		}
		t := types.Target{Path: path}
		for _, s := range f.Steps {
			t.Operations = append(t.Operations, s.Operation())
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// Operation converts a step into a worklist operation
func (s Step) Operation() types.Operation {
	if s.Type == StepField {
		return types.FieldOp(types.StructuredField{
			Name:   s.Name,
			Kind:   types.ValueKind(s.Kind),
			Value:  s.Value,
			Values: s.Values,
		})
	}
	return types.FragmentOp(types.Fragment{
		Content: trimContent(s.Content),
		Comment: strings.TrimRight(s.Comment, "\n"),
		Marker:  s.Marker,
	})
}

func trimContent(s string) string {
	return strings.TrimRight(s, "\r\n")
}
