// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the config directory lookup when set.
	ConfigDirPath string
}

// Provider loads configuration from explicit options. Load returns the
// resolved config alongside the path of the file it came from; the path is
// empty when no file was found and the defaults apply.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, string, error)
}

// cueFileProvider resolves configuration from a config.cue file on disk,
// validated against the embedded schema.
type cueFileProvider struct{}

// NewProvider creates the file-backed configuration provider.
func NewProvider() Provider {
	return &cueFileProvider{}
}

// Load reads configuration from the requested source.
func (p *cueFileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	return loadWithOptions(ctx, opts)
}
