package render

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Matter is the front matter header of a file template.
type Matter struct {
	// To is a template for the output path, relative to the project root.
	To string `yaml:"to"`
	// When is an optional template; the file is skipped unless it renders
	// to "true".
	When string `yaml:"when"`
}

// Document is a file template split into its header and body.
type Document struct {
	Name   string
	Matter Matter
	Body   string
}

// Output is the result of rendering a Document.
type Output struct {
	Path    string
	Content []byte
	Skipped bool
}

var yamlMatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// ParseDocument splits data into front matter and body. A template without
// a header is rejected since its destination would be unknown.
func ParseDocument(name string, data []byte) (*Document, error) {
	var matter Matter

	rest, err := frontmatter.MustParse(bytes.NewReader(data), &matter, yamlMatter)
	if err != nil {
		return nil, fmt.Errorf("failed to parse front matter of %s: %w", name, err)
	}

	if strings.TrimSpace(matter.To) == "" {
		return nil, fmt.Errorf("template %s has no 'to' in its front matter", name)
	}

	return &Document{
		Name:   name,
		Matter: matter,
		Body:   strings.TrimPrefix(string(rest), "\n"),
	}, nil
}

// RenderDocument renders the template at p inside fsys: first the `when`
// condition, then the `to` path, then the body.
func (r *Renderer) RenderDocument(fsys fs.FS, p string, data any) (*Output, error) {
	raw, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read template '%s': %w", p, err)
	}

	doc, err := ParseDocument(p, raw)
	if err != nil {
		return nil, err
	}

	return r.Render(doc, data)
}

// Render renders a parsed document.
func (r *Renderer) Render(doc *Document, data any) (*Output, error) {
	if doc.Matter.When != "" {
		cond, err := r.RenderString(doc.Name+"#when", doc.Matter.When, data)
		if err != nil {
			return nil, err
		}
		ok, err := strconv.ParseBool(strings.TrimSpace(string(cond)))
		if err != nil {
			return nil, fmt.Errorf("template %s: 'when' must render to a boolean, got %q", doc.Name, cond)
		}
		if !ok {
			return &Output{Skipped: true}, nil
		}
	}

	to, err := r.RenderString(doc.Name+"#to", doc.Matter.To, data)
	if err != nil {
		return nil, err
	}
	target := path.Clean(strings.TrimSpace(string(to)))
	if target == "." || path.IsAbs(target) || strings.HasPrefix(target, "../") {
		return nil, fmt.Errorf("template %s renders to invalid path %q", doc.Name, target)
	}

	body, err := r.RenderString(doc.Name, doc.Body, data)
	if err != nil {
		return nil, err
	}

	return &Output{Path: target, Content: body}, nil
}
