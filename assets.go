package numberinput

import (
	"io/fs"

	"github.com/goliatone/go-numberinput/pkg/vdom"
)

// StylesheetFS exposes the default widget stylesheet so Go applications can
// serve it next to rendered markup.
//
// Typical mount:
//
//	mux.Handle("/numberinput/",
//	  http.StripPrefix("/numberinput/",
//	    http.FileServerFS(numberinput.StylesheetFS()),
//	  ),
//	)
func StylesheetFS() fs.FS {
	return vdom.AssetsFS()
}
