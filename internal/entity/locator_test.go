package entity_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/go-ignite-jhipster/internal/entity"
	"github.com/jakoblorz/go-ignite-jhipster/internal/filesystem"
	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
	"github.com/jakoblorz/go-ignite-jhipster/internal/prompt"
)

const (
	projectRoot = "/work/app"
	fooJSON     = `{"name":"Foo","fields":[{"fieldName":"name","fieldType":"String"}],"relationships":[],"pagination":"no"}`
)

type locatorFixture struct {
	fs       *filesystem.MockFileSystem
	prompter *prompt.ScriptedPrompter
	out      *bytes.Buffer
	locator  *entity.Locator
}

func newLocatorFixture(t *testing.T, answers ...string) *locatorFixture {
	t.Helper()

	fs := filesystem.NewMockFileSystem()
	fs.SetCurrentDir(projectRoot)
	fs.AddDir(projectRoot)

	f := &locatorFixture{
		fs:       fs,
		prompter: prompt.NewScriptedPrompter(answers...),
		out:      &bytes.Buffer{},
	}
	f.locator = entity.NewLocator(fs, models.NewProject("app", projectRoot), f.prompter, f.out, nil)
	return f
}

func (f *locatorFixture) config(t *testing.T) models.ProjectConfig {
	t.Helper()
	data, err := f.fs.ReadFile(projectRoot + "/ignite/ignite.json")
	require.NoError(t, err)
	var cfg models.ProjectConfig
	require.NoError(t, json.Unmarshal(data, &cfg))
	return cfg
}

func hasWrites(ops []string) bool {
	for _, op := range ops {
		if strings.HasPrefix(op, "write ") || strings.HasPrefix(op, "mkdir ") || strings.HasPrefix(op, "append ") {
			return true
		}
	}
	return false
}

func TestLocate_BlankNameFailsBeforeAnyIO(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		f := newLocatorFixture(t, "../test")

		_, err := f.locator.Locate(context.Background(), name, "../test")
		require.Error(t, err)
		require.True(t, models.IsValidation(err))

		require.Empty(t, f.fs.Ops(), "no filesystem access for %q", name)
		require.Empty(t, f.prompter.Asked(), "no prompt for %q", name)
	}
}

func TestLocate_UnusableNameIsValidationError(t *testing.T) {
	f := newLocatorFixture(t)

	_, err := f.locator.Locate(context.Background(), "--", "")
	require.True(t, models.IsValidation(err))
	require.Empty(t, f.fs.Ops())
}

func TestLocate_CacheHitSkipsOverrideAndPrompt(t *testing.T) {
	f := newLocatorFixture(t)
	f.fs.AddFile(projectRoot+"/.jhipster/Foo.json", []byte(fooJSON))
	f.fs.AddFile("/work/test/.jhipster/Foo.json", []byte(`{"name":"Other"}`))

	res, err := f.locator.Locate(context.Background(), "foo", "../test")
	require.NoError(t, err)

	require.Equal(t, entity.SourceCache, res.Source)
	require.Equal(t, "Foo", res.Name)
	require.Equal(t, projectRoot+"/.jhipster/Foo.json", res.CachePath)
	require.Empty(t, res.Directory)
	require.Equal(t, "Foo", res.Definition.Name)
	require.Len(t, res.Definition.Fields, 1)

	require.Empty(t, f.prompter.Asked())
	require.False(t, hasWrites(f.fs.Ops()), "cache hit must not copy: %v", f.fs.Ops())
	require.False(t, f.fs.Exists(projectRoot+"/ignite/ignite.json"))
	for _, op := range f.fs.Ops() {
		require.NotContains(t, op, "/work/test", "override must not be consulted")
	}
	require.Contains(t, f.out.String(), "Found the entity config locally in .jhipster")
}

func TestLocate_OverrideCopiesAndPersistsDirectory(t *testing.T) {
	f := newLocatorFixture(t)
	f.fs.AddFile("/work/test/.jhipster/Foo.json", []byte(fooJSON))

	res, err := f.locator.Locate(context.Background(), "Foo", "../test")
	require.NoError(t, err)

	require.Equal(t, entity.SourceOverride, res.Source)
	require.Equal(t, "../test", res.Directory)

	cached, err := f.fs.ReadFile(projectRoot + "/.jhipster/Foo.json")
	require.NoError(t, err)
	require.Equal(t, fooJSON, string(cached))

	stored, err := f.fs.ReadFile(projectRoot + "/ignite/ignite.json")
	require.NoError(t, err)
	require.Equal(t, "{\n\t\"jhipsterDirectory\": \"../test\"\n}\n", string(stored))

	require.Empty(t, f.prompter.Asked())
	require.Contains(t, f.out.String(), "Found the entity config at ../test/.jhipster/Foo.json")
}

func TestLocate_OverrideCopiesExactlyOneFile(t *testing.T) {
	f := newLocatorFixture(t)
	f.fs.AddFile("/work/test/.jhipster/Foo.json", []byte(fooJSON))
	f.fs.AddFile("/work/test/.jhipster/Bar.json", []byte(`{"name":"Bar"}`))
	f.fs.AddFile(projectRoot+"/ignite/ignite.json", []byte(`{"name":"app","jhipsterDirectory":"../old"}`))

	_, err := f.locator.Locate(context.Background(), "Foo", "../test/")
	require.NoError(t, err)

	var writes []string
	for _, op := range f.fs.Ops() {
		if strings.HasPrefix(op, "write ") {
			writes = append(writes, op)
		}
	}
	require.Equal(t, []string{
		"write " + projectRoot + "/.jhipster/Foo.json",
		"write " + projectRoot + "/ignite/ignite.json",
	}, writes)
	require.False(t, f.fs.Exists(projectRoot+"/.jhipster/Bar.json"))

	cfg := f.config(t)
	require.Equal(t, "../test", cfg.JHipsterDirectory())
	require.Equal(t, "app", cfg.String(models.ConfigKeyName), "other keys survive")
}

func TestLocate_OverrideMissingIsNotFoundWithoutMutation(t *testing.T) {
	f := newLocatorFixture(t, "../test")
	f.fs.AddFile(projectRoot+"/ignite/ignite.json", []byte(`{"jhipsterDirectory":"../old"}`))
	f.fs.AddFile("/work/test/.jhipster/Foo.json", []byte(fooJSON))

	_, err := f.locator.Locate(context.Background(), "Foo", "../missing")
	require.Error(t, err)
	require.True(t, models.IsNotFound(err))
	require.Contains(t, err.Error(), "../missing/.jhipster/Foo.json")

	require.Empty(t, f.prompter.Asked(), "no fallback to prompting")
	require.False(t, hasWrites(f.fs.Ops()))
	require.False(t, f.fs.Exists(projectRoot+"/.jhipster"))
	require.Equal(t, "../old", f.config(t).JHipsterDirectory())
}

func TestLocate_MalformedSourceLeavesNoCache(t *testing.T) {
	f := newLocatorFixture(t)
	f.fs.AddFile(projectRoot+"/ignite/ignite.json", []byte(`{"jhipsterDirectory":"../old"}`))
	f.fs.AddFile("/work/bad/.jhipster/Foo.json", []byte(`{"fields": [`))
	f.fs.AddFile("/work/good/.jhipster/Foo.json", []byte(fooJSON))

	_, err := f.locator.Locate(context.Background(), "Foo", "../bad")
	require.Error(t, err)
	require.True(t, models.IsParse(err))
	require.Contains(t, err.Error(), "/work/bad/.jhipster/Foo.json")

	require.False(t, hasWrites(f.fs.Ops()), "nothing written for a malformed source: %v", f.fs.Ops())
	require.False(t, f.fs.Exists(projectRoot+"/.jhipster/Foo.json"))
	require.Equal(t, "../old", f.config(t).JHipsterDirectory())

	res, err := f.locator.Locate(context.Background(), "Foo", "../good")
	require.NoError(t, err)
	require.Equal(t, entity.SourceOverride, res.Source)
	require.Equal(t, "Foo", res.Definition.Name)
	require.Equal(t, "../good", f.config(t).JHipsterDirectory())
}

func TestLocate_InvalidSourceLeavesNoCache(t *testing.T) {
	f := newLocatorFixture(t)
	f.fs.AddFile("/work/bad/.jhipster/Foo.json", []byte(`{"name":"Foo","fields":[{"fieldType":"String"}]}`))

	_, err := f.locator.Locate(context.Background(), "Foo", "../bad")
	require.True(t, models.IsParse(err))
	require.False(t, f.fs.Exists(projectRoot+"/.jhipster/Foo.json"))
	require.False(t, f.fs.Exists(projectRoot+"/ignite/ignite.json"))
}

func TestLocate_OverrideAbsolutePath(t *testing.T) {
	f := newLocatorFixture(t)
	f.fs.AddFile("/srv/backend/.jhipster/Foo.json", []byte(fooJSON))

	res, err := f.locator.Locate(context.Background(), "Foo", "/srv/backend")
	require.NoError(t, err)
	require.Equal(t, "/srv/backend", res.Directory)
	require.Equal(t, "/srv/backend", f.config(t).JHipsterDirectory())
}

func TestLocate_InteractiveRetriesUntilFound(t *testing.T) {
	f := newLocatorFixture(t, "../wrong", "", "../test/")
	f.fs.AddFile(projectRoot+"/ignite/ignite.json", []byte(`{"jhipsterDirectory":"../previous"}`))
	f.fs.AddFile("/work/test/.jhipster/Foo.json", []byte(fooJSON))

	res, err := f.locator.Locate(context.Background(), "Foo", "")
	require.NoError(t, err)

	require.Equal(t, entity.SourcePrompt, res.Source)
	require.Equal(t, "../test", res.Directory)
	require.Equal(t, 3, res.Attempts)

	asked := f.prompter.Asked()
	require.Len(t, asked, 3)
	require.Equal(t, entity.DirQuestion, asked[0].Name)
	for _, q := range asked {
		require.Equal(t, "../previous", q.Default, "every prompt is pre-filled with the last known directory")
	}

	require.Equal(t, "../test", f.config(t).JHipsterDirectory())
	cached, err := f.fs.ReadFile(projectRoot + "/.jhipster/Foo.json")
	require.NoError(t, err)
	require.Equal(t, fooJSON, string(cached))

	out := f.out.String()
	require.Contains(t, out, "No entity configuration file found at ../wrong/.jhipster/Foo.json, please try again.")
	require.Contains(t, out, "A directory is required")
	require.Contains(t, out, "Found entity file at ../test/.jhipster/Foo.json")
	require.Contains(t, out, "Entity config saved to your app's .jhipster folder.")
}

func TestLocate_InteractiveWithoutConfigHasNoDefault(t *testing.T) {
	f := newLocatorFixture(t, "../test")
	f.fs.AddFile("/work/test/.jhipster/Foo.json", []byte(fooJSON))

	_, err := f.locator.Locate(context.Background(), "Foo", "")
	require.NoError(t, err)
	require.Empty(t, f.prompter.Asked()[0].Default)
}

func TestLocate_InteractiveAbort(t *testing.T) {
	f := newLocatorFixture(t, "../wrong")
	f.prompter.Err = models.ErrAborted
	f.fs.AddFile(projectRoot+"/ignite/ignite.json", []byte(`{"jhipsterDirectory":"../old"}`))

	_, err := f.locator.Locate(context.Background(), "Foo", "")
	require.Error(t, err)
	require.True(t, errors.Is(err, models.ErrAborted))

	require.False(t, f.fs.Exists(projectRoot+"/.jhipster"))
	require.Equal(t, "../old", f.config(t).JHipsterDirectory())
}

func TestLocate_InteractiveCancelledContext(t *testing.T) {
	f := newLocatorFixture(t, "../test")
	f.fs.AddFile("/work/test/.jhipster/Foo.json", []byte(fooJSON))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.locator.Locate(ctx, "Foo", "")
	require.Error(t, err)
	require.True(t, errors.Is(err, models.ErrAborted))
	require.True(t, errors.Is(err, context.Canceled))
	require.False(t, f.fs.Exists(projectRoot+"/.jhipster/Foo.json"))
}

func TestLocate_HeadlessPromptFails(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(projectRoot)

	locator := entity.NewLocator(fs, models.NewProject("app", projectRoot), prompt.NewHeadlessPrompter(), &bytes.Buffer{}, nil)

	_, err := locator.Locate(context.Background(), "Foo", "")
	require.Error(t, err)
	require.True(t, errors.Is(err, prompt.ErrNoTerminal))
	require.Contains(t, err.Error(), "--jh-dir")
}

func TestLocate_NormalizesName(t *testing.T) {
	f := newLocatorFixture(t)
	f.fs.AddFile("/work/test/.jhipster/FieldTestEntity.json", []byte(`{"fields":[]}`))

	res, err := f.locator.Locate(context.Background(), "field-test-entity", "../test")
	require.NoError(t, err)
	require.Equal(t, "FieldTestEntity", res.Name)
	require.Equal(t, projectRoot+"/.jhipster/FieldTestEntity.json", res.CachePath)
	require.Equal(t, "FieldTestEntity", res.Definition.Name, "name defaults to the canonical one")
}

func TestLocate_MalformedCachedDefinition(t *testing.T) {
	f := newLocatorFixture(t)
	f.fs.AddFile(projectRoot+"/.jhipster/Foo.json", []byte(`{"fields": [`))

	_, err := f.locator.Locate(context.Background(), "Foo", "")
	require.Error(t, err)
	require.True(t, models.IsParse(err))
}

func TestLocate_InvalidDefinitionIsParseError(t *testing.T) {
	f := newLocatorFixture(t)
	f.fs.AddFile(projectRoot+"/.jhipster/Foo.json", []byte(`{"fields":[{"fieldType":"String"}]}`))

	_, err := f.locator.Locate(context.Background(), "Foo", "")
	require.True(t, models.IsParse(err))
	require.Contains(t, err.Error(), "no fieldName")
}

func TestState_String(t *testing.T) {
	require.Equal(t, "prompting", entity.StatePrompting.String())
	require.Equal(t, "validating", entity.StateValidating.String())
	require.Equal(t, "resolved", entity.StateResolved.String())
	require.Equal(t, "aborted", entity.StateAborted.String())
}
