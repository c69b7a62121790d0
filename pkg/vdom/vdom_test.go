package vdom

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-numberinput/pkg/numberfield"
	"github.com/goliatone/go-numberinput/pkg/testsupport"
)

func mount(t *testing.T, value string, fns ...numberfield.OptionFn) (*Node, *Node, *numberfield.Field) {
	t.Helper()
	root := NewElement("form", "")
	input := NewInput(value)
	root.Append(input)
	fns = append([]numberfield.OptionFn{numberfield.WithRepeatDelay(time.Hour)}, fns...)
	field, err := numberfield.New(input, NewHost(), fns...)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	return root, input, field
}

func TestHost_MountsWrapperButtonsAndUnit(t *testing.T) {
	root, input, _ := mount(t, "", numberfield.WithUnit("kg"))

	wrapper := root.Find(numberfield.ClassWrapper)
	if wrapper == nil || wrapper.Parent() != root {
		t.Fatalf("wrapper not mounted under root")
	}
	if input.Parent() != wrapper {
		t.Fatalf("input not moved into wrapper")
	}

	var classes []string
	for _, child := range wrapper.Children() {
		classes = append(classes, child.Class)
	}
	if diff := cmp.Diff([]string{"", numberfield.ClassButtons, numberfield.ClassUnit}, classes); diff != "" {
		t.Fatalf("wrapper children mismatch (-want +got):\n%s", diff)
	}

	buttons := wrapper.Find(numberfield.ClassButtons)
	var labels []string
	for _, b := range buttons.Children() {
		labels = append(labels, b.Tag+"."+b.Class)
	}
	if diff := cmp.Diff([]string{"button.increase", "button.decrease"}, labels); diff != "" {
		t.Fatalf("spin buttons mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_HTML(t *testing.T) {
	root, _, _ := mount(t, "", numberfield.WithUnit("kg"))

	got, err := Render(root)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	button := func(action string) string {
		return `<button class="` + action + `" style="font-size: 1px; height: 50%; overflow: hidden; text-indent: -100px">` + action + `</button>`
	}
	want := `<form><div class="numberInput">` +
		`<input style="float: left" type="text" value="0">` +
		`<div class="spinButtons" style="float: left; height: 100%">` + button("increase") + button("decrease") + `</div>` +
		`<div class="unit">kg</div>` +
		`</div></form>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("html mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_SanitizesUnit(t *testing.T) {
	root, _, _ := mount(t, "", numberfield.WithSpinner(false), numberfield.WithUnit("<b>m</b>&s"))

	got, err := Render(root)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "<b>") {
		t.Fatalf("unit markup not stripped: %s", got)
	}
	if !strings.Contains(got, `<div class="unit">m&amp;s</div>`) {
		t.Fatalf("unit text not escaped: %s", got)
	}
	if strings.Contains(got, numberfield.ClassWrapper) {
		t.Fatalf("no wrapper expected without spinner: %s", got)
	}
}

func TestRender_ThemeTokens(t *testing.T) {
	selector := &stubSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Tokens: map[string]string{
				"numberinput-color": "#123456",
				"class.increase":    "btn btn-up",
			},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{"numberinput-color": "#000000"}},
			},
		},
	}}

	renderer, err := NewRenderer(WithTheme(selector, "acme", "dark"), WithDefaultStylesheet())
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	root, _, _ := mount(t, "3")

	got, err := renderer.Render(root)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if selector.name != "acme" || selector.variant != "dark" {
		t.Fatalf("unexpected selector args %q/%q", selector.name, selector.variant)
	}
	for _, want := range []string{
		`<form style="--numberinput-color: #000000">`,
		`class="increase btn btn-up"`,
		`class="decrease"`,
		`<style>`,
		`.spinButtons`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %s", want, got)
		}
	}
}

func TestRender_ThemeSelectorError(t *testing.T) {
	renderer, err := NewRenderer(WithTheme(&stubSelector{err: errors.New("boom")}, "missing", ""))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := renderer.Render(NewElement("div", "")); err == nil {
		t.Fatalf("expected selector error")
	}
	if _, err := renderer.Render(nil); err == nil {
		t.Fatalf("expected error for nil root")
	}
}

func TestEvents_TypingAndKeys(t *testing.T) {
	_, input, field := mount(t, "", numberfield.WithMaxValue(500))

	input.Select(0, 1)
	if n := input.Type("42"); n != 2 {
		t.Fatalf("expected 2 inserted runes, got %d", n)
	}
	if input.Value() != "42" {
		t.Fatalf("typed value = %q", input.Value())
	}

	if input.Type("a.") != 0 {
		t.Fatalf("letters and separators should be rejected")
	}

	input.Press(numberfield.KeyUp)
	if field.Text() != "43" {
		t.Fatalf("arrow up should step, got %q", field.Text())
	}
	input.Press(numberfield.KeyDown)
	input.Press(numberfield.KeyDown)
	if field.Text() != "41" {
		t.Fatalf("arrow down should step, got %q", field.Text())
	}

	input.Press(numberfield.KeyBackspace)
	if input.Value() != "4" {
		t.Fatalf("backspace should delete, got %q", input.Value())
	}
	input.Press(numberfield.KeyHome)
	input.Press(numberfield.KeyDelete)
	if input.Value() != "" {
		t.Fatalf("delete should remove the digit, got %q", input.Value())
	}

	input.Type("999")
	if input.Value() != "500" {
		t.Fatalf("key-up should clamp to max, got %q", input.Value())
	}
}

func TestEvents_BlurRestoresRequiredDefault(t *testing.T) {
	_, input, _ := mount(t, "7", numberfield.WithRequired(true), numberfield.WithDefaultValue("5"))

	input.Focus()
	input.SetValue("")
	input.Blur()
	if input.Focused() {
		t.Fatalf("blur should clear focus")
	}
	if input.Value() != "5" {
		t.Fatalf("expected default after blur, got %q", input.Value())
	}
}

func TestEvents_SpinButtons(t *testing.T) {
	root, input, field := mount(t, "5", numberfield.WithMinValue(0))

	increase := root.Find("increase")
	decrease := root.Find("decrease")

	increase.PointerDown()
	increase.PointerUp()
	if input.Value() != "6" {
		t.Fatalf("increase press should step once, got %q", input.Value())
	}
	if field.SpinButtons()[0].Active() {
		t.Fatalf("increase should be released")
	}

	decrease.PointerDown()
	decrease.PointerLeave()
	if input.Value() != "5" {
		t.Fatalf("decrease press should step once, got %q", input.Value())
	}
	if increase.Click() {
		t.Fatalf("click default should be suppressed")
	}
}

func TestHost_Errors(t *testing.T) {
	_, input, _ := mount(t, "1")
	if _, err := numberfield.New(input, NewHost()); !errors.Is(err, ErrAlreadyBound) {
		t.Fatalf("expected ErrAlreadyBound, got %v", err)
	}

	detached := NewInput("1")
	_, err := numberfield.New(detached, NewHost(), numberfield.WithSpinner(false), numberfield.WithUnit("kg"))
	if !errors.Is(err, ErrDetached) {
		t.Fatalf("expected ErrDetached, got %v", err)
	}

	if err := NewHost().Bind(&foreignElement{}, numberfield.EventHandlers{}); !errors.Is(err, ErrForeignNode) {
		t.Fatalf("expected ErrForeignNode, got %v", err)
	}
}

func TestHost_DetachedTargetWithSpinner(t *testing.T) {
	input := NewInput("1")
	if _, err := numberfield.New(input, NewHost(), numberfield.WithUnit("kg")); err != nil {
		t.Fatalf("new field: %v", err)
	}
	wrapper := input.Parent()
	if wrapper == nil || wrapper.Class != numberfield.ClassWrapper || wrapper.Parent() != nil {
		t.Fatalf("expected detached wrapper around input")
	}
	if wrapper.Find(numberfield.ClassUnit) == nil {
		t.Fatalf("unit should land in the wrapper")
	}
}

func TestHost_FailedMountCanBeRetried(t *testing.T) {
	input := NewInput("")
	fns := []numberfield.OptionFn{numberfield.WithSpinner(false), numberfield.WithUnit("kg")}
	if _, err := numberfield.New(input, NewHost(), fns...); !errors.Is(err, ErrDetached) {
		t.Fatalf("expected ErrDetached, got %v", err)
	}
	if input.eventHandlers().KeyPress != nil {
		t.Fatalf("failed mount must not bind handlers")
	}

	root := NewElement("form", "")
	root.Append(input)
	if _, err := numberfield.New(input, NewHost(), fns...); err != nil {
		t.Fatalf("retry after attaching: %v", err)
	}
	input.SetValue("")
	if typed := input.Type("5"); typed != 1 || input.Value() != "5" {
		t.Fatalf("expected the retried field to accept typing, got %d/%q", typed, input.Value())
	}
	if root.Find(numberfield.ClassUnit) == nil {
		t.Fatalf("expected a single unit label after retry")
	}
}

func TestHost_RequiredBlurFillsMinimum(t *testing.T) {
	root, input, field := mount(t, "", numberfield.WithRequired(true), numberfield.WithMinValue(5), numberfield.WithMaxValue(10), numberfield.WithSpinner(false))
	input.Focus()
	input.Blur()
	if input.Value() != "5" || field.GetValue() != 5 {
		t.Fatalf("expected 5 after blur, got %q", input.Value())
	}
	if root.Find(numberfield.ClassWrapper) != nil {
		t.Fatalf("no wrapper expected without spinner")
	}
}

type foreignElement struct{}

func (foreignElement) Value() string   { return "" }
func (foreignElement) SetValue(string) {}

type stubSelector struct {
	selection     *theme.Selection
	err           error
	name, variant string
}

func (s *stubSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.name, s.variant = name, variant
	if s.err != nil {
		return nil, s.err
	}
	return s.selection, nil
}

func TestRender_ThemedGolden(t *testing.T) {
	selector := &stubSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:   "acme",
			Tokens: map[string]string{"class.increase": "btn btn-up"},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{"numberinput-color": "#000000"}},
			},
		},
	}}
	renderer, err := NewRenderer(WithTheme(selector, "acme", "dark"))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	root, _, _ := mount(t, "7", numberfield.WithUnit("kg"))

	got, err := renderer.Render(root)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	path := filepath.Join("testdata", "themed.golden.html")
	if testsupport.WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	if diff := testsupport.CompareGolden(testsupport.MustReadGoldenString(t, path), got); diff != "" {
		t.Fatalf("html mismatch (-want +got):\n%s", diff)
	}
}
