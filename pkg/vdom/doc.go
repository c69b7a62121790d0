// Package vdom is an in-memory host for numberfield. It keeps a small node
// tree, routes simulated keyboard and pointer events to the bound handlers
// and renders the tree to HTML.
//
//	root := vdom.NewElement("form", "")
//	input := vdom.NewInput("")
//	root.Append(input)
//
//	field, err := numberfield.New(input, vdom.NewHost(), numberfield.WithUnit("kg"))
//	...
//	input.Type("12")
//	field.SpinButtons()[0].Start()
//
//	html, err := vdom.Render(root)
package vdom
