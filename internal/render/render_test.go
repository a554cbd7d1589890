package render_test

import (
	"testing"
	"testing/fstest"

	"github.com/jakoblorz/go-ignite-jhipster/internal/render"
	"github.com/stretchr/testify/require"
)

func TestPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foo", "Foo"},
		{"Foo", "Foo"},
		{"FOO", "Foo"},
		{"fieldTestEntity", "FieldTestEntity"},
		{"field_test-entity", "FieldTestEntity"},
		{"  spaced out ", "SpacedOut"},
		{"XMLHttpRequest", "XmlHttpRequest"},
		{"entity2go", "Entity2go"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, render.PascalCase(tt.in))
		})
	}
}

func TestCamelCase(t *testing.T) {
	require.Equal(t, "fieldTestEntity", render.CamelCase("FieldTestEntity"))
	require.Equal(t, "foo", render.CamelCase("FOO"))
	require.Equal(t, "", render.CamelCase("--"))
}

func TestPlural(t *testing.T) {
	tests := map[string]string{
		"foo":    "foos",
		"Entity": "Entities",
		"day":    "days",
		"box":    "boxes",
		"Status": "Statuses",
		"batch":  "batches",
		"FOO":    "FOOS",
		"":       "",
	}

	for in, want := range tests {
		require.Equal(t, want, render.Plural(in), in)
	}
}

func TestLowerFirst(t *testing.T) {
	require.Equal(t, "fooBar", render.LowerFirst("FooBar"))
	require.Equal(t, "", render.LowerFirst(""))
}

func TestRenderString_SprigAndHelpers(t *testing.T) {
	r := render.NewRenderer()

	out, err := r.RenderString("t", `{{ .name | pascalCase }} {{ .name | camelCase | upper }} {{ list 1 2 | len }}`, map[string]any{"name": "my-entity"})
	require.NoError(t, err)
	require.Equal(t, "MyEntity MYENTITY 2", string(out))
}

func TestRenderString_ParseError(t *testing.T) {
	r := render.NewRenderer()

	_, err := r.RenderString("broken", `{{ .name `, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse template 'broken'")
}

func TestRenderFS_Caches(t *testing.T) {
	fsys := fstest.MapFS{
		"a.tmpl": {Data: []byte("hello {{ .Name }}")},
	}
	r := render.NewRenderer()

	out, err := r.RenderFS(fsys, "a.tmpl", map[string]string{"Name": "world"})
	require.NoError(t, err)
	require.Equal(t, "hello world", string(out))

	// Cached: the changed source is not re-read until the cache is cleared.
	fsys["a.tmpl"] = &fstest.MapFile{Data: []byte("bye {{ .Name }}")}
	out, err = r.RenderFS(fsys, "a.tmpl", map[string]string{"Name": "world"})
	require.NoError(t, err)
	require.Equal(t, "hello world", string(out))

	r.ClearCache()
	out, err = r.RenderFS(fsys, "a.tmpl", map[string]string{"Name": "world"})
	require.NoError(t, err)
	require.Equal(t, "bye world", string(out))
}

func TestRenderFS_Missing(t *testing.T) {
	r := render.NewRenderer()
	_, err := r.RenderFS(fstest.MapFS{}, "nope.tmpl", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read template")
}

func TestRenderDocument(t *testing.T) {
	fsys := fstest.MapFS{
		"redux.js.tmpl": {Data: []byte("---\nto: App/Redux/{{ .Name }}Redux.js\n---\nexport const {{ .Name | camelCase }} = 1\n")},
		"search.js.tmpl": {Data: []byte("---\nto: App/Search/{{ .Name }}.js\nwhen: \"{{ .Search }}\"\n---\nsearch\n")},
	}
	r := render.NewRenderer()

	out, err := r.RenderDocument(fsys, "redux.js.tmpl", map[string]any{"Name": "Foo", "Search": false})
	require.NoError(t, err)
	require.False(t, out.Skipped)
	require.Equal(t, "App/Redux/FooRedux.js", out.Path)
	require.Equal(t, "export const foo = 1\n", string(out.Content))

	out, err = r.RenderDocument(fsys, "search.js.tmpl", map[string]any{"Name": "Foo", "Search": false})
	require.NoError(t, err)
	require.True(t, out.Skipped)

	out, err = r.RenderDocument(fsys, "search.js.tmpl", map[string]any{"Name": "Foo", "Search": true})
	require.NoError(t, err)
	require.Equal(t, "App/Search/Foo.js", out.Path)
}

func TestParseDocument_Errors(t *testing.T) {
	_, err := render.ParseDocument("plain", []byte("no header here\n"))
	require.Error(t, err)

	_, err = render.ParseDocument("empty-to", []byte("---\nwhen: true\n---\nbody\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no 'to'")
}

func TestRender_RejectsEscapingPaths(t *testing.T) {
	r := render.NewRenderer()

	for _, to := range []string{"../outside.js", "/etc/passwd"} {
		doc := &render.Document{Name: "bad", Matter: render.Matter{To: to}, Body: "x"}
		_, err := r.Render(doc, nil)
		require.Error(t, err, to)
	}
}

func TestRender_WhenMustBeBoolean(t *testing.T) {
	r := render.NewRenderer()

	doc := &render.Document{Name: "w", Matter: render.Matter{To: "a.js", When: "maybe"}, Body: "x"}
	_, err := r.Render(doc, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must render to a boolean")
}
