// Package settings resolves tool defaults for the bootstrap flags from
// command-line flags, IGNITE_JHIPSTER_* environment variables and an
// optional .ignite-jhipster.yaml file, in that order of precedence.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
)

const (
	EnvPrefix  = "IGNITE_JHIPSTER"
	ConfigName = ".ignite-jhipster"
)

// Keys double as flag names.
const (
	KeyAuthType           = "auth-type"
	KeySearchEngine       = "search-engine"
	KeyDevScreens         = "dev-screens"
	KeyAnimatable         = "animatable"
	KeySkipGit            = "skip-git"
	KeySkipLint           = "skip-lint"
	KeyBoilerplate        = "boilerplate"
	KeyReactNativeVersion = "react-native-version"
	KeyDebug              = "debug"
)

const (
	DefaultBoilerplate        = "ignite-jhipster"
	DefaultReactNativeVersion = "latest"
)

// Settings is a read-only view over the merged sources.
type Settings struct {
	v *viper.Viper
}

// Load reads settings for a run in dir. flags may be nil.
func Load(dir string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	// Enable environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyBoilerplate, DefaultBoilerplate)
	v.SetDefault(KeyReactNativeVersion, DefaultReactNativeVersion)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s.yaml: %w", ConfigName, err)
		}
	}

	return &Settings{v: v}, nil
}

// ConfigFile returns the settings file in use, or "" when none was found.
func (s *Settings) ConfigFile() string {
	return s.v.ConfigFileUsed()
}

func (s *Settings) String(key string) string {
	return s.v.GetString(key)
}

func (s *Settings) Bool(key string) bool {
	return s.v.GetBool(key)
}

// OptionalBool returns nil when no source set key explicitly, so the caller
// can still prompt for it.
func (s *Settings) OptionalBool(key string) *bool {
	if !s.v.IsSet(key) {
		return nil
	}
	b := s.v.GetBool(key)
	return &b
}

// BootstrapOptions builds the options for a new app named name. Answers not
// provided by any source stay unset.
func (s *Settings) BootstrapOptions(name string) (*models.BootstrapOptions, error) {
	opts := &models.BootstrapOptions{
		Name:               name,
		SearchEngine:       s.OptionalBool(KeySearchEngine),
		DevScreens:         s.OptionalBool(KeyDevScreens),
		Animatable:         s.OptionalBool(KeyAnimatable),
		SkipGit:            s.Bool(KeySkipGit),
		SkipLint:           s.Bool(KeySkipLint),
		Debug:              s.Bool(KeyDebug),
		Boilerplate:        s.String(KeyBoilerplate),
		ReactNativeVersion: s.String(KeyReactNativeVersion),
	}

	if s.v.IsSet(KeyAuthType) && s.String(KeyAuthType) != "" {
		auth, err := models.ParseAuthType(s.String(KeyAuthType))
		if err != nil {
			return nil, &models.ValidationError{Field: KeyAuthType, Message: err.Error()}
		}
		opts.AuthType = auth
	}

	return opts, nil
}
