package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

// ErrUnsupportedFormat is returned for theme files that are neither TOML nor JSON.
var ErrUnsupportedFormat = errors.New("theme: unsupported file format")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports whether every token of t is usable.
func Validate(t Theme) error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("invalid theme %q: %w", t.Name, err)
	}
	return nil
}

// Load reads a theme file from fs. Values present in the file override the
// built-in defaults; a palette in the file replaces the default palette.
func Load(fs afero.Fs, path string) (Theme, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme file: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes theme data in the format named by ext (".toml" or ".json").
func Parse(data []byte, ext string) (Theme, error) {
	t := Default()
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &t); err != nil {
			return Theme{}, fmt.Errorf("failed to decode toml theme: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &t); err != nil {
			return Theme{}, fmt.Errorf("failed to decode json theme: %w", err)
		}
	default:
		return Theme{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := Validate(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}
