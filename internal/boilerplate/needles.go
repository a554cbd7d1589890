package boilerplate

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

const needlesFile = "templates/needles.yaml"

// Needle describes lines inserted above a marker comment in an app file.
type Needle struct {
	// File is relative to the project root.
	File string `yaml:"file"`
	// Marker is the needle name searched for in File.
	Marker string `yaml:"needle"`
	// Text is a template for the inserted lines.
	Text string `yaml:"text"`
}

// Needles returns the entity needle patches in application order.
func Needles() ([]Needle, error) {
	data, err := fs.ReadFile(assets, needlesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", needlesFile, err)
	}

	var needles []Needle
	if err := yaml.Unmarshal(data, &needles); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", needlesFile, err)
	}

	for i, n := range needles {
		if n.File == "" || n.Marker == "" || n.Text == "" {
			return nil, fmt.Errorf("%s: entry %d needs file, needle and text", needlesFile, i)
		}
	}

	return needles, nil
}
