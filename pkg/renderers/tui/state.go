package tui

import (
	"encoding/json"
	"fmt"
	"strings"
)

// State tracks collected field texts in prompt order.
type State struct {
	names  []string
	values map[string]Answer
}

// Answer is the final text of a field and its parsed value.
type Answer struct {
	Text  string
	Value float64
}

// NewState returns an empty state.
func NewState() *State {
	return &State{values: make(map[string]Answer)}
}

// Set records the answer for name. Re-setting a name keeps its position.
func (s *State) Set(name string, answer Answer) {
	if _, exists := s.values[name]; !exists {
		s.names = append(s.names, name)
	}
	s.values[name] = answer
}

// Get returns the answer recorded for name.
func (s *State) Get(name string) (Answer, bool) {
	if s == nil {
		return Answer{}, false
	}
	answer, ok := s.values[name]
	return answer, ok
}

// Names returns the recorded names in prompt order.
func (s *State) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.names...)
}

func (s *State) serialize(format OutputFormat) ([]byte, error) {
	switch format {
	case OutputFormatPrettyText:
		return []byte(s.pretty()), nil
	default:
		return s.json()
	}
}

func (s *State) pretty() string {
	var b strings.Builder
	for _, name := range s.names {
		answer := s.values[name]
		text := answer.Text
		if text == "" {
			text = "(empty)"
		}
		fmt.Fprintf(&b, "%s: %s\n", name, text)
	}
	return b.String()
}

// json keeps prompt order, which encoding a map would lose.
func (s *State) json() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("tui: encode name %q: %w", name, err)
		}
		b.Write(key)
		b.WriteByte(':')

		answer := s.values[name]
		if answer.Text == "" {
			b.WriteString("null")
			continue
		}
		value, err := json.Marshal(answer.Value)
		if err != nil {
			return nil, fmt.Errorf("tui: encode %s: %w", name, err)
		}
		b.Write(value)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}
