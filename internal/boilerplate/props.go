package boilerplate

import "github.com/jakoblorz/go-ignite-jhipster/internal/models"

// AppProps is the data passed to the bootstrap templates.
type AppProps struct {
	Name               string
	IgniteVersion      string
	ReactNativeVersion string
	AuthType           models.AuthType
	SearchEngine       bool
	DevScreens         bool
	Animatable         bool
}

// IsJWT and friends keep the template conditionals short.
func (p AppProps) IsJWT() bool     { return p.AuthType == models.AuthJWT }
func (p AppProps) IsOAuth2() bool  { return p.AuthType == models.AuthOAuth2 }
func (p AppProps) IsSession() bool { return p.AuthType == models.AuthSession }
