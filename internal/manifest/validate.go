// Where: internal/manifest/validate.go
// What: Schema validation for rendered flatpak-builder manifests.
// Why: Catch malformed manifests before handing them to flatpak-builder.
package manifest

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed schema/flatpak-manifest.schema.json
var schemaFS embed.FS

const schemaName = "schema/flatpak-manifest.schema.json"

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Validate checks a rendered manifest against the embedded flatpak-builder
// manifest schema. Both JSON and YAML manifests are accepted; YAML is
// converted to JSON before validation. The canonical JSON bytes are
// returned on success.
func Validate(content []byte) ([]byte, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return nil, fmt.Errorf("convert manifest to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return nil, err
	}
	return jsonData, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		data, err := schemaFS.ReadFile(schemaName)
		if err != nil {
			schemaErr = err
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaName, bytes.NewReader(data)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaName)
	})
	return compiledSchema, schemaErr
}
