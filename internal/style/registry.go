package style

import (
	"embed"
	"fmt"
	"regexp"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

var (
	defaultOnce sync.Once
	defaultSpec *Spec
	defaultErr  error
)

// Default returns the embedded style spec. It is parsed once and shared;
// callers must not modify it.
func Default() (*Spec, error) {
	defaultOnce.Do(func() {
		defaultSpec, defaultErr = Load("default")
	})
	return defaultSpec, defaultErr
}

// MustDefault is Default for process start-up, where a broken embedded
// file is a build defect.
func MustDefault() *Spec {
	spec, err := Default()
	if err != nil {
		panic(err)
	}
	return spec
}

// Load parses and validates the named embedded style file.
func Load(name string) (*Spec, error) {
	filename := fmt.Sprintf("config/%s.yaml", name)
	data, err := configFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return Parse(data)
}

// Parse decodes a YAML style document.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal style spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid style spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that every style is renderable.
func (s *Spec) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Font, validation.Required),
		validation.Field(&s.Page),
		validation.Field(&s.Styles),
	)
}

// Validate implements validation.Validatable.
func (p PageStyle) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Width, validation.Required, validation.Min(1)),
		validation.Field(&p.Height, validation.Required, validation.Min(1)),
		validation.Field(&p.Margin, validation.Min(0)),
	)
}

// Validate implements validation.Validatable.
func (s Styles) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title),
		validation.Field(&s.Heading1),
		validation.Field(&s.Heading2),
		validation.Field(&s.Bullet),
		validation.Field(&s.Paragraph),
		validation.Field(&s.Footer),
	)
}

// Validate implements validation.Validatable.
func (t TextStyle) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Size, validation.Required, validation.Min(1.0), validation.Max(96.0)),
		validation.Field(&t.Color, validation.Required, validation.Match(hexColor)),
		validation.Field(&t.Align, validation.In(AlignLeft, AlignCenter, AlignRight, AlignJustify)),
	)
}
