package scene

import (
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Lookup for ids that are not registered.
var ErrNotFound = errors.New("scene not found")

// Metadata describes a scene for navigation. ID is the routing key.
type Metadata struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

//go:embed scenes.yaml
var registryYAML []byte

var registry = mustParseRegistry(registryYAML)

// All returns the registered scenes in display order.
func All() []Metadata {
	return append([]Metadata(nil), registry...)
}

// Lookup returns the metadata for id.
func Lookup(id string) (Metadata, error) {
	for _, m := range registry {
		if m.ID == id {
			return m, nil
		}
	}
	return Metadata{}, errors.Wrapf(ErrNotFound, "%q", id)
}

func mustParseRegistry(data []byte) []Metadata {
	scenes, err := parseRegistry(data)
	if err != nil {
		panic(err.Error())
	}
	return scenes
}

func parseRegistry(data []byte) ([]Metadata, error) {
	var doc struct {
		Scenes []Metadata `yaml:"scenes"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing scene registry")
	}
	seen := map[string]bool{}
	for i, m := range doc.Scenes {
		if m.ID == "" || m.Name == "" {
			return nil, errors.Errorf("scene %d: id and name are required", i)
		}
		if seen[m.ID] {
			return nil, errors.Errorf("scene %q registered twice", m.ID)
		}
		seen[m.ID] = true
	}
	return doc.Scenes, nil
}
