// Package docs хранит описание API в формате OpenAPI 3.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPIYAML []byte

// YAML возвращает описание API как есть.
func YAML() []byte {
	return openAPIYAML
}

// JSON переводит описание API из YAML в JSON.
func JSON() ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(openAPIYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse openapi: %w", err)
	}
	return json.Marshal(doc)
}
