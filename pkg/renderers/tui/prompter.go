package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-numberinput/pkg/numberfield"
)

// Question labels a field prompt.
type Question struct {
	Name  string
	Label string
	Help  string
}

// Entry pairs a question with the field that validates its answers.
type Entry struct {
	Question
	Field *numberfield.Field
}

// Prompter asks for numbers on a terminal and runs every answer through a
// numberfield.Field, so the same bounds and separators apply as in the
// browser widget.
type Prompter struct {
	driver        PromptDriver
	outputFormat  OutputFormat
	theme         Theme
	maxAttempts   int
	confirmSubmit bool
	logger        *zap.Logger
}

// New constructs a prompter with defaults (survey driver, JSON output).
func New(options ...Option) (*Prompter, error) {
	p := &Prompter{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		logger:       zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	return p, nil
}

// ContentType reports the serialization format used by PromptAll.
func (p *Prompter) ContentType() string {
	if p.outputFormat == OutputFormatPrettyText {
		return "text/plain"
	}
	return "application/json"
}

// Prompt asks until the answer passes field.IsValid, writes it and applies
// the blur rules, then returns the field's final text. An empty answer on a
// required field yields the default.
func (p *Prompter) Prompt(ctx context.Context, field *numberfield.Field, q Question) (string, error) {
	if ctx == nil {
		return "", errors.New("tui: context is required")
	}
	if field == nil {
		return "", ErrNilField
	}

	opts := field.Options()
	name := q.Name
	if name == "" {
		name = q.Label
	}
	validate := func(answer string) error {
		if !field.IsValid(strings.TrimSpace(answer)) {
			return fmt.Errorf("%q is not a number %s", answer, describeBounds(opts))
		}
		return nil
	}

	for attempt := 1; ; attempt++ {
		answer, err := p.driver.Input(ctx, InputConfig{
			Message:   p.theme.PromptPrefix + questionLabel(q, opts),
			Default:   field.Text(),
			Help:      questionHelp(q, opts),
			Validator: validate,
		})
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)

		if err := validate(answer); err != nil {
			p.logger.Debug("tui: answer rejected", zap.String("field", name), zap.String("answer", answer))
			_ = p.driver.Info(ctx, fmt.Sprintf("%sInvalid %s: %v", p.theme.ErrorPrefix, name, err))
			if p.maxAttempts > 0 && attempt >= p.maxAttempts {
				return "", fmt.Errorf("%w: %s", ErrTooManyAttempts, name)
			}
			continue
		}

		field.SetValue(answer)
		field.HandleBlur()
		return field.Text(), nil
	}
}

// PromptAll prompts every entry in order and serializes the answers.
func (p *Prompter) PromptAll(ctx context.Context, entries []Entry) ([]byte, error) {
	state := NewState()
	for _, entry := range entries {
		text, err := p.Prompt(ctx, entry.Field, entry.Question)
		if err != nil {
			return nil, err
		}
		state.Set(entryName(entry), Answer{Text: text, Value: entry.Field.GetValue()})
	}

	if p.confirmSubmit {
		_ = p.driver.Info(ctx, p.theme.InfoPrefix+strings.TrimRight(state.pretty(), "\n"))
		ok, err := p.driver.Confirm(ctx, ConfirmConfig{Message: "Submit these values?", Default: true})
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrAborted
		}
	}

	return state.serialize(p.outputFormat)
}

func entryName(entry Entry) string {
	if entry.Name != "" {
		return entry.Name
	}
	return entry.Label
}

func questionLabel(q Question, opts numberfield.Options) string {
	label := q.Label
	if label == "" {
		label = q.Name
	}
	if opts.Unit != "" {
		label += " (" + opts.Unit + ")"
	}
	return label
}

func questionHelp(q Question, opts numberfield.Options) string {
	bounds := describeBounds(opts)
	if q.Help == "" {
		return bounds
	}
	return q.Help + " " + bounds
}

func describeBounds(opts numberfield.Options) string {
	var parts []string
	if opts.MinValue != nil {
		parts = append(parts, "min "+numberfield.FormatNumber(*opts.MinValue, opts))
	}
	if opts.MaxValue != nil {
		parts = append(parts, "max "+numberfield.FormatNumber(*opts.MaxValue, opts))
	}
	if opts.AllowFloats {
		parts = append(parts, fmt.Sprintf("up to %d decimals with %q", opts.Precision, opts.DecimalSeparator))
	} else {
		parts = append(parts, "whole numbers")
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
