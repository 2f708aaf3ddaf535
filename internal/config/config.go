// Package config loads shadergate job configuration from file,
// environment variables, and flags.
package config

import (
	"fmt"

	"github.com/leapstack-labs/shadergate/pkg/gate"
	"github.com/leapstack-labs/shadergate/pkg/profile"
)

// Default configuration values. Version 110 with no profile matches a
// desktop shader with no #version line.
const (
	DefaultProfile = "none"
	DefaultVersion = 110
	DefaultStage   = "vertex"
	DefaultOutput  = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// Job holds the configuration for one gate invocation. Source files may
// still override profile and version through their #version line.
type Job struct {
	Profile     string `koanf:"profile"`
	Version     int    `koanf:"glsl_version"`
	Stage       string `koanf:"stage"`
	Spirv       bool   `koanf:"spirv"`
	Vulkan      int    `koanf:"vulkan"`
	OpenGLSpirv int    `koanf:"opengl_spirv"`

	ForwardCompatible bool `koanf:"forward_compatible"`
	RelaxedErrors     bool `koanf:"relaxed_errors"`
	SuppressWarnings  bool `koanf:"suppress_warnings"`

	// Extensions are directives applied before any source directives,
	// keyed by extension id with a behavior token value.
	Extensions map[string]string `koanf:"extensions"`

	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
}

// Validate checks the fields the gate cannot soft-diagnose.
func (j *Job) Validate() error {
	if _, ok := profile.Parse(j.Profile); !ok {
		return fmt.Errorf("unknown profile %q (expected none, core, compatibility, or es)", j.Profile)
	}
	if _, ok := profile.ParseStage(j.Stage); !ok {
		return fmt.Errorf("unknown stage %q", j.Stage)
	}
	if j.Version < 0 {
		return fmt.Errorf("glsl_version must be non-negative, got %d", j.Version)
	}
	if j.Vulkan < 0 || j.OpenGLSpirv < 0 {
		return fmt.Errorf("target versions must be non-negative")
	}
	return nil
}

// GateConfig converts the job into a compile-unit configuration.
func (j *Job) GateConfig() (gate.Config, error) {
	p, ok := profile.Parse(j.Profile)
	if !ok {
		return gate.Config{}, fmt.Errorf("unknown profile %q", j.Profile)
	}
	s, ok := profile.ParseStage(j.Stage)
	if !ok {
		return gate.Config{}, fmt.Errorf("unknown stage %q", j.Stage)
	}
	return gate.Config{
		Profile: p,
		Version: j.Version,
		Stage:   s,
		Target: gate.Target{
			Spirv:       j.Spirv || j.Vulkan > 0 || j.OpenGLSpirv > 0,
			Vulkan:      j.Vulkan,
			OpenGLSpirv: j.OpenGLSpirv,
		},
		ForwardCompatible: j.ForwardCompatible,
		RelaxedErrors:     j.RelaxedErrors,
		SuppressWarnings:  j.SuppressWarnings,
	}, nil
}
