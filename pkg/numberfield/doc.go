// Package numberfield constrains an editable text element to numeric input.
//
// A Field borrows one Element (anything exposing Value/SetValue) and keeps
// its text the single source of truth for the current value. Keystrokes are
// judged by the pure Filter function so hosts only translate their native
// events into HandleKeyDown/HandleKeyPress calls. Spin buttons repeat their
// action on a fixed delay while held and stop synchronously on release.
//
// DOM mutation is isolated behind Host. Passing a nil Host yields a headless
// field that callers drive directly; pkg/vdom provides an in-memory Host and
// pkg/dom the browser one.
package numberfield
