package layout

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/matte/pkg/errors"
)

// Format is the encoding of a template file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

type templateFile struct {
	Templates []templateSpec `toml:"template" yaml:"templates"`
}

type templateSpec struct {
	Name   string   `toml:"name" yaml:"name"`
	Buffer string   `toml:"buffer" yaml:"buffer"`
	Cuts   []string `toml:"cuts" yaml:"cuts"`
}

// LoadFile reads custom templates from a .toml, .yaml or .yml file.
// Templates are validated but not checked against any catalog; use
// Catalog.With to merge them.
func LoadFile(path string) ([]Template, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported template file %q (want .toml or .yaml)", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.FromOS(err, "open template file %s", path)
	}
	defer f.Close()

	return Decode(f, format)
}

// Decode reads templates in the given format from r.
func Decode(r io.Reader, format Format) ([]Template, error) {
	var file templateFile
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "decode toml templates")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "decode yaml templates")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported template format %q", format)
	}

	templates := make([]Template, 0, len(file.Templates))
	for _, spec := range file.Templates {
		t, err := spec.template()
		if err != nil {
			return nil, err
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}

func (s templateSpec) template() (Template, error) {
	cuts, err := ParseCuts(s.Cuts)
	if err != nil {
		return Template{}, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "template %q", s.Name)
	}
	t := Template{Name: strings.TrimSpace(s.Name), Cuts: cuts}
	switch strings.ToLower(s.Buffer) {
	case "", "bottom":
	case "top":
		t.TopBuffer = true
	default:
		return Template{}, errors.New(errors.ErrCodeInvalidTemplate, "template %q: buffer must be \"top\" or \"bottom\", got %q", s.Name, s.Buffer)
	}
	return t, nil
}
