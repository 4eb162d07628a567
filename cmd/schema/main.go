// schema generates pkg/config/schema.json from the config structs
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/umputun/tgsurvey/pkg/config"
)

func main() {
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := generate(outputPath); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	fmt.Printf("schema generated at %s\n", outputPath)
}

// generate writes the schema and checks the default config passes it
func generate(outputPath string) error {
	data, err := json.MarshalIndent(config.GenerateSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(outputPath, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return fmt.Errorf("write schema file: %w", err)
	}

	if err := config.VerifyAgainstEmbeddedSchema(config.Default()); err != nil {
		return fmt.Errorf("default config doesn't match embedded schema: %w", err)
	}
	return nil
}
