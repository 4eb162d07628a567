package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// schemaNode is the subset of JSON schema used for verification
type schemaNode struct {
	Ref        string                 `json:"$ref"`
	Defs       map[string]*schemaNode `json:"$defs"`
	Properties map[string]*schemaNode `json:"properties"`
	Required   []string               `json:"required"`
	Type       string                 `json:"type"`
	Minimum    *float64               `json:"minimum"`
}

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Checks required properties and numeric minimums of every object reachable from the root.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var root schemaNode
	if err := json.Unmarshal([]byte(embeddedSchema), &root); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]interface{}
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	var problems []string
	verifyNode(&root, root.Defs, configMap, "", &problems)
	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("schema validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

func verifyNode(node *schemaNode, defs map[string]*schemaNode, value interface{}, path string, problems *[]string) {
	if node == nil {
		return
	}
	if node.Ref != "" {
		node = defs[strings.TrimPrefix(node.Ref, "#/$defs/")]
		if node == nil {
			*problems = append(*problems, fmt.Sprintf("%s: unresolved reference", pathOrRoot(path)))
			return
		}
	}

	switch v := value.(type) {
	case map[string]interface{}:
		for _, req := range node.Required {
			if _, ok := v[req]; !ok {
				*problems = append(*problems, fmt.Sprintf("%s is required", joinPath(path, req)))
			}
		}
		for name, prop := range node.Properties {
			if child, ok := v[name]; ok {
				verifyNode(prop, defs, child, joinPath(path, name), problems)
			}
		}
	case float64:
		if node.Minimum != nil && v < *node.Minimum {
			*problems = append(*problems, fmt.Sprintf("%s must be >= %v", path, *node.Minimum))
		}
	}
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func pathOrRoot(path string) string {
	if path == "" {
		return "config"
	}
	return path
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
