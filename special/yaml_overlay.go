package special

import (
	"os"

	"gopkg.in/yaml.v2"
)

// yamlOverlay is the optional structured alternative to phrases.txt, for
// operators who would rather maintain special phrases as YAML than as the
// original engine's line-oriented command=value format. Static entries are
// plain strings; a leading '#' still marks a dynamic template, same as in
// phrases.txt, so the two formats share Expand semantics.
type yamlOverlay struct {
	Phrases map[string][]string `yaml:"phrases"`
}

// LoadYAMLOverlay reads a phrases.yaml file and merges its entries into t.
// Missing files are not an error: the overlay is optional.
func LoadYAMLOverlay(t *Table, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	var doc yamlOverlay
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	for command, values := range doc.Phrases {
		for _, v := range values {
			p := Phrase{Command: command}
			if len(v) > 0 && v[0] == '#' {
				p.Dynamic = true
				p.Value = v[1:]
			} else {
				p.Value = v
			}
			t.add(p)
		}
	}
	return nil
}
