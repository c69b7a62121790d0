package numberinput

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-numberinput/pkg/numberfield"
	"github.com/goliatone/go-numberinput/pkg/schema"
	"github.com/goliatone/go-numberinput/pkg/testsupport"
	"github.com/goliatone/go-numberinput/pkg/vdom"
)

func TestStylesheetFSContainsDefaultStylesheet(t *testing.T) {
	data, err := fs.ReadFile(StylesheetFS(), vdom.StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), ".numberInput") {
		t.Fatalf("expected stylesheet to style the wrapper class")
	}
}

func TestEmbeddedTemplatesContainTree(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), vdom.TreeTemplate); err != nil {
		t.Fatalf("expected tree template to be readable: %v", err)
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("12", []OptionFn{numberfield.WithUnit("cm"), numberfield.WithSpinner(false)})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<form><input type="text" value="12"><div class="unit">cm</div></form>`
	if html != want {
		t.Fatalf("unexpected html:\n got: %s\nwant: %s", html, want)
	}
}

func TestCreateWithoutHost(t *testing.T) {
	input := vdom.NewInput("")
	field, err := Create(input, nil, numberfield.WithDefaultValue("4"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if field.Text() != "4" {
		t.Fatalf("expected default text, got %q", field.Text())
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.yaml")
	if err := os.WriteFile(path, []byte("fields:\n  qty:\n    maxValue: 9\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	store, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if _, ok := store.Field("qty"); !ok {
		t.Fatalf("expected qty field in store")
	}
}

func TestSchemaFieldsRender(t *testing.T) {
	doc := testsupport.LoadDocument(t, filepath.Join("testdata", "order.json"))

	fields, err := schema.Fields(testsupport.Context(), doc, "Order")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if _, ok := fields["note"]; ok {
		t.Fatalf("string properties must not become fields")
	}

	html, err := RenderHTML("", fields["weight"])
	if err != nil {
		t.Fatalf("render weight: %v", err)
	}
	if !strings.Contains(html, `value="0.0"`) && !strings.Contains(html, `value="0"`) {
		t.Fatalf("unexpected weight markup: %s", html)
	}
	if !strings.Contains(html, `<div class="unit">kg</div>`) {
		t.Fatalf("expected unit label in %s", html)
	}

	field, err := Create(vdom.NewInput(""), nil, fields["quantity"]...)
	if err != nil {
		t.Fatalf("create quantity: %v", err)
	}
	if field.Text() != "1" || field.IsValid("100") {
		t.Fatalf("quantity should default to 1 and reject 100, got %q", field.Text())
	}
}
