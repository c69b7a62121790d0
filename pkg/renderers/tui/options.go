package tui

import "go.uber.org/zap"

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits a JSON object of numbers (null for empty fields).
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText emits one "name: value" line per field.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme captures optional message prefixes the prompter applies when
// printing messages.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// Option configures the Prompter.
type Option func(*Prompter)

// WithPromptDriver overrides the prompt driver used by the prompter.
func WithPromptDriver(driver PromptDriver) Option {
	return func(p *Prompter) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(p *Prompter) {
		if format != "" {
			p.outputFormat = format
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(p *Prompter) {
		p.theme = theme
	}
}

// WithMaxAttempts bounds consecutive invalid answers per field. Zero keeps
// asking forever.
func WithMaxAttempts(n int) Option {
	return func(p *Prompter) {
		if n >= 0 {
			p.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used for rejected answers.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Prompter) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithConfirmSubmit asks for confirmation after all fields were collected.
func WithConfirmSubmit(enabled bool) Option {
	return func(p *Prompter) {
		p.confirmSubmit = enabled
	}
}
