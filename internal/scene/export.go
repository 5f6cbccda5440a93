// internal/scene/export.go
package scene

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is a generic projection of a node tree for dumps and the debug endpoint.
type Document struct {
	Kind       string         `yaml:"kind" json:"kind"`
	Primitive  string         `yaml:"primitive" json:"primitive"`
	Attributes map[string]any `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Children   []Document     `yaml:"children,omitempty" json:"children,omitempty"`
}

// Export converts a node tree into a Document.
func Export(n Node) Document {
	doc := Document{
		Kind:       n.Kind().String(),
		Primitive:  n.Primitive(),
		Attributes: n.Attributes().Map(),
	}
	for _, c := range n.Children() {
		doc.Children = append(doc.Children, Export(c))
	}
	return doc
}

// MarshalYAML renders the tree as YAML.
func MarshalYAML(n Node) ([]byte, error) {
	out, err := yaml.Marshal(Export(n))
	if err != nil {
		return nil, fmt.Errorf("scene: marshal yaml: %w", err)
	}
	return out, nil
}

// MarshalJSON renders the tree as indented JSON.
func MarshalJSON(n Node) ([]byte, error) {
	out, err := json.MarshalIndent(Export(n), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("scene: marshal json: %w", err)
	}
	return out, nil
}
