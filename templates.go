package numberinput

import (
	"io/fs"

	"github.com/goliatone/go-numberinput/pkg/vdom"
)

// EmbeddedTemplates exposes the built-in markup templates so callers can
// reuse or extend them through vdom.WithTemplates.
func EmbeddedTemplates() fs.FS {
	return vdom.TemplatesFS()
}
