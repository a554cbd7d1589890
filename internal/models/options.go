package models

import "fmt"

// AuthType is the authentication scheme of the generated app.
type AuthType string

const (
	AuthJWT     AuthType = "jwt"
	AuthOAuth2  AuthType = "oauth2"
	AuthSession AuthType = "session"
)

// IsValid checks if the auth type is valid
func (a AuthType) IsValid() bool {
	switch a {
	case AuthJWT, AuthOAuth2, AuthSession:
		return true
	default:
		return false
	}
}

// String returns the string representation of AuthType
func (a AuthType) String() string {
	return string(a)
}

// ParseAuthType parses a string into an AuthType
func ParseAuthType(s string) (AuthType, error) {
	at := AuthType(s)
	if !at.IsValid() {
		return "", fmt.Errorf("invalid auth type: %s (must be jwt, oauth2, or session)", s)
	}
	return at, nil
}

// BootstrapOptions holds every choice the new-project workflow needs. Pointer
// fields are nil until answered by a flag, a setting or a prompt.
type BootstrapOptions struct {
	Name               string
	AuthType           AuthType
	SearchEngine       *bool
	DevScreens         *bool
	Animatable         *bool
	SkipGit            bool
	SkipLint           bool
	Debug              bool
	Boilerplate        string
	ReactNativeVersion string
}

// Complete reports whether all prompt-able options have a value.
func (o *BootstrapOptions) Complete() bool {
	return o.AuthType != "" && o.SearchEngine != nil && o.DevScreens != nil && o.Animatable != nil
}

// BoolValue dereferences an optional flag, treating nil as false.
func BoolValue(b *bool) bool {
	return b != nil && *b
}
