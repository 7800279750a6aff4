package mdtint

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	width            int
	stripFrontMatter bool
	binaryCheck      bool
}

// WithWidth word-wraps rendered output at width printable columns. A width
// of zero or less emits the output as rendered.
func WithWidth(width int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.width = width
	}
}

// WithFrontMatter controls whether a leading YAML/TOML/JSON front matter
// block is kept. It is kept by default.
func WithFrontMatter(keep bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.stripFrontMatter = !keep
	}
}

// WithBinaryCheck rejects input that looks binary (see ValidateInput). Off by
// default: any valid UTF-8 renders.
func WithBinaryCheck(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.binaryCheck = enabled
	}
}

func resolveConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
