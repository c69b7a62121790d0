//go:build js && wasm

// Command numberinput-wasm decorates every input[data-numberinput] element on
// the page. The attribute holds the field configuration as JSON or YAML; an
// empty attribute uses the defaults. window.numberInput(element, config)
// decorates elements added later.
package main

import (
	"fmt"
	"syscall/js"

	"go.uber.org/zap"

	"github.com/goliatone/go-numberinput/pkg/config"
	"github.com/goliatone/go-numberinput/pkg/dom"
	"github.com/goliatone/go-numberinput/pkg/numberfield"
)

const selector = "input[data-numberinput]"

func main() {
	logger := newLogger()
	host := dom.NewHost()

	inputs := js.Global().Get("document").Call("querySelectorAll", selector)
	for i := 0; i < inputs.Length(); i++ {
		el := inputs.Index(i)
		if err := mount(host, el, el.Call("getAttribute", "data-numberinput").String(), logger); err != nil {
			logger.Error("numberinput: mount failed", zap.Int("index", i), zap.Error(err))
		}
	}

	js.Global().Set("numberInput", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return "numberInput: element argument is required"
		}
		raw := ""
		if len(args) > 1 && args[1].Type() == js.TypeString {
			raw = args[1].String()
		}
		if err := mount(host, args[0], raw, logger); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	select {}
}

func mount(host *dom.Host, el js.Value, raw string, logger *zap.Logger) error {
	var fns []numberfield.OptionFn
	if raw != "" {
		parsed, err := config.ParseField([]byte(raw), selector)
		if err != nil {
			return err
		}
		fns = parsed
	}
	fns = append(fns, numberfield.WithLogger(logger))

	if _, err := numberfield.New(dom.NewInput(el), host, fns...); err != nil {
		return fmt.Errorf("decorate input: %w", err)
	}
	return nil
}

// newLogger writes to the browser console through the wasm stderr shim.
func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
