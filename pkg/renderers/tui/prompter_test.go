package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-numberinput/pkg/numberfield"
)

type stubDriver struct {
	inputs       []string
	confirm      []bool
	configs      []InputConfig
	infoMessages []string
	inputPos     int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.configs = append(s.configs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

type memElement struct{ value string }

func (e *memElement) Value() string     { return e.value }
func (e *memElement) SetValue(v string) { e.value = v }

func newField(t *testing.T, fns ...numberfield.OptionFn) *numberfield.Field {
	t.Helper()
	f, err := numberfield.New(&memElement{}, nil, fns...)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	return f
}

func TestPrompt_RetriesUntilValid(t *testing.T) {
	driver := &stubDriver{inputs: []string{"-1", "abc", " 10 "}}
	p, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new prompter: %v", err)
	}
	field := newField(t, numberfield.WithMinValue(0), numberfield.WithMaxValue(20))

	got, err := p.Prompt(context.Background(), field, Question{Name: "count", Label: "Count"})
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if got != "10" {
		t.Fatalf("expected 10, got %q", got)
	}
	if len(driver.infoMessages) != 2 {
		t.Fatalf("expected two validation messages, got %v", driver.infoMessages)
	}
	if driver.configs[0].Default != "0" {
		t.Fatalf("expected current text as default, got %q", driver.configs[0].Default)
	}
	if !strings.Contains(driver.configs[0].Help, "min 0") || !strings.Contains(driver.configs[0].Help, "max 20") {
		t.Fatalf("help should describe bounds: %q", driver.configs[0].Help)
	}
	if err := driver.configs[0].Validator("30"); err == nil {
		t.Fatalf("validator should reject out-of-range answers")
	}
}

func TestPrompt_RequiredEmptyYieldsDefault(t *testing.T) {
	driver := &stubDriver{inputs: []string{""}}
	p, _ := New(WithPromptDriver(driver))
	field := newField(t, numberfield.WithRequired(true), numberfield.WithDefaultValue("3"))

	got, err := p.Prompt(context.Background(), field, Question{Name: "qty"})
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if got != "3" {
		t.Fatalf("expected default 3, got %q", got)
	}
}

func TestPrompt_MaxAttempts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"x", "y"}}
	p, _ := New(WithPromptDriver(driver), WithMaxAttempts(2), WithTheme(Theme{ErrorPrefix: "! "}))

	_, err := p.Prompt(context.Background(), newField(t), Question{Name: "n"})
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	if !strings.HasPrefix(driver.infoMessages[0], "! Invalid n") {
		t.Fatalf("error prefix not applied: %q", driver.infoMessages[0])
	}
}

func TestPrompt_Errors(t *testing.T) {
	p, _ := New(WithPromptDriver(&stubDriver{}))
	if _, err := p.Prompt(context.Background(), nil, Question{}); !errors.Is(err, ErrNilField) {
		t.Fatalf("expected ErrNilField, got %v", err)
	}
	if _, err := p.Prompt(context.Background(), newField(t), Question{}); err == nil {
		t.Fatalf("expected driver error to propagate")
	}
}

func TestPromptAll_Serializes(t *testing.T) {
	entries := func(t *testing.T) []Entry {
		return []Entry{
			{Question: Question{Name: "weight"}, Field: newField(t,
				numberfield.WithAllowFloats(true),
				numberfield.WithDecimalSeparator(","),
				numberfield.WithUnit("kg"))},
			{Question: Question{Name: "note"}, Field: newField(t, numberfield.WithDefaultValue(""))},
			{Question: Question{Name: "count"}, Field: newField(t)},
		}
	}

	driver := &stubDriver{inputs: []string{"2,5", "", "7"}}
	p, _ := New(WithPromptDriver(driver))
	out, err := p.PromptAll(context.Background(), entries(t))
	if err != nil {
		t.Fatalf("prompt all: %v", err)
	}
	if diff := cmp.Diff(`{"weight":2.5,"note":null,"count":7}`, string(out)); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}
	if driver.configs[0].Message != "weight (kg)" {
		t.Fatalf("unit missing from label: %q", driver.configs[0].Message)
	}

	driver = &stubDriver{inputs: []string{"2,5", "", "7"}, confirm: []bool{true}}
	p, _ = New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPrettyText), WithConfirmSubmit(true))
	out, err = p.PromptAll(context.Background(), entries(t))
	if err != nil {
		t.Fatalf("prompt all: %v", err)
	}
	if diff := cmp.Diff("weight: 2,5\nnote: (empty)\ncount: 7\n", string(out)); diff != "" {
		t.Fatalf("pretty mismatch (-want +got):\n%s", diff)
	}
	if p.ContentType() != "text/plain" {
		t.Fatalf("unexpected content type %q", p.ContentType())
	}
}

func TestPromptAll_DeclinedConfirm(t *testing.T) {
	driver := &stubDriver{inputs: []string{"1"}, confirm: []bool{false}}
	p, _ := New(WithPromptDriver(driver), WithConfirmSubmit(true))
	_, err := p.PromptAll(context.Background(), []Entry{{Question: Question{Name: "n"}, Field: newField(t)}})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}
