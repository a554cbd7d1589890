package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
	"github.com/jakoblorz/go-ignite-jhipster/internal/settings"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("new", pflag.ContinueOnError)
	fs.String(settings.KeyAuthType, "", "")
	fs.Bool(settings.KeySearchEngine, false, "")
	fs.Bool(settings.KeyDevScreens, false, "")
	fs.Bool(settings.KeyAnimatable, false, "")
	fs.Bool(settings.KeySkipGit, false, "")
	fs.Bool(settings.KeySkipLint, false, "")
	fs.String(settings.KeyBoilerplate, settings.DefaultBoilerplate, "")
	fs.String(settings.KeyReactNativeVersion, settings.DefaultReactNativeVersion, "")
	return fs
}

func TestBootstrapOptions_Defaults(t *testing.T) {
	s, err := settings.Load(t.TempDir(), newFlags())
	require.NoError(t, err)
	require.Empty(t, s.ConfigFile())

	opts, err := s.BootstrapOptions("MyApp")
	require.NoError(t, err)
	require.Equal(t, "MyApp", opts.Name)
	require.Empty(t, opts.AuthType)
	require.Nil(t, opts.SearchEngine, "unset flags must stay unanswered")
	require.Nil(t, opts.DevScreens)
	require.Nil(t, opts.Animatable)
	require.Equal(t, settings.DefaultBoilerplate, opts.Boilerplate)
	require.Equal(t, settings.DefaultReactNativeVersion, opts.ReactNativeVersion)
	require.False(t, opts.Complete())
}

func TestBootstrapOptions_FlagsWin(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ignite-jhipster.yaml"), []byte("auth-type: session\nanimatable: true\n"), 0644))
	t.Setenv("IGNITE_JHIPSTER_AUTH_TYPE", "oauth2")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--auth-type=jwt", "--search-engine=false", "--skip-git"}))

	s, err := settings.Load(dir, flags)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, ".ignite-jhipster.yaml"), s.ConfigFile())

	opts, err := s.BootstrapOptions("MyApp")
	require.NoError(t, err)
	require.Equal(t, models.AuthJWT, opts.AuthType)
	require.NotNil(t, opts.SearchEngine)
	require.False(t, *opts.SearchEngine)
	require.True(t, opts.SkipGit)
	require.NotNil(t, opts.Animatable)
	require.True(t, *opts.Animatable, "file value applies when no flag is given")
	require.Nil(t, opts.DevScreens)
}

func TestBootstrapOptions_EnvOverFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ignite-jhipster.yaml"), []byte("auth-type: session\n"), 0644))
	t.Setenv("IGNITE_JHIPSTER_AUTH_TYPE", "oauth2")
	t.Setenv("IGNITE_JHIPSTER_DEV_SCREENS", "true")

	s, err := settings.Load(dir, newFlags())
	require.NoError(t, err)

	opts, err := s.BootstrapOptions("MyApp")
	require.NoError(t, err)
	require.Equal(t, models.AuthOAuth2, opts.AuthType)
	require.NotNil(t, opts.DevScreens)
	require.True(t, *opts.DevScreens)
}

func TestBootstrapOptions_InvalidAuthType(t *testing.T) {
	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--auth-type=basic"}))

	s, err := settings.Load(t.TempDir(), flags)
	require.NoError(t, err)

	_, err = s.BootstrapOptions("MyApp")
	require.Error(t, err)
	require.True(t, models.IsValidation(err))
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ignite-jhipster.yaml"), []byte("auth-type: [unclosed\n"), 0644))

	_, err := settings.Load(dir, nil)
	require.Error(t, err)
}
