package models

// Well-known ProjectConfig keys.
const (
	ConfigKeyJHipsterDirectory = "jhipsterDirectory"
	ConfigKeyName              = "name"
	ConfigKeyAuthType          = "authType"
	ConfigKeySearchEngine      = "searchEngine"
	ConfigKeyDevScreens        = "devScreens"
	ConfigKeyAnimatable        = "animatable"
	ConfigKeyReactNative       = "reactNativeVersion"
)

// ProjectConfig is the persisted plugin configuration (ignite/ignite.json).
// Values are kept as decoded JSON so unknown keys written by other tools
// survive a load/save round trip.
type ProjectConfig map[string]any

// String returns the string value for key, or "" if absent or not a string.
func (c ProjectConfig) String(key string) string {
	s, _ := c[key].(string)
	return s
}

// Bool returns the boolean value for key. String values "true"/"false" are
// accepted as well since older configs stored prompt answers verbatim.
func (c ProjectConfig) Bool(key string) bool {
	switch v := c[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// JHipsterDirectory returns the last confirmed entity definition directory.
func (c ProjectConfig) JHipsterDirectory() string {
	return c.String(ConfigKeyJHipsterDirectory)
}

// Overlay returns a new config holding every key of base with the keys of
// partial applied on top. Precedence is top-level only: a nested object in
// partial replaces the nested object in base wholesale.
func Overlay(base, partial ProjectConfig) ProjectConfig {
	out := make(ProjectConfig, len(base)+len(partial))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range partial {
		out[k] = v
	}
	return out
}
