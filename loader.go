package numberinput

import (
	"github.com/goliatone/go-numberinput/pkg/config"
	"github.com/goliatone/go-numberinput/pkg/schema"
)

// NewSchemaLoader constructs a loader for OpenAPI documents that carry field
// definitions.
func NewSchemaLoader(options ...schema.LoaderOption) *schema.Loader {
	return schema.NewLoader(options...)
}

// LoadConfig reads a YAML or JSON field configuration file.
func LoadConfig(path string) (*config.Store, error) {
	return config.Load(path)
}
