package bootstrap

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
	"github.com/jakoblorz/go-ignite-jhipster/internal/prompt"
)

var appNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Questions asked for options no flag, environment variable or settings file
// provided. Names match the CLI flags.
var (
	authTypeQuestion = prompt.Question{
		Name:    "auth-type",
		Message: "Which authentication type does your JHipster app use?",
		Default: string(models.AuthJWT),
		Options: []prompt.Option{
			{Label: "JWT Authentication", Value: string(models.AuthJWT)},
			{Label: "OAuth2 Authentication", Value: string(models.AuthOAuth2)},
			{Label: "HTTP Session Authentication", Value: string(models.AuthSession)},
		},
	}

	searchEngineQuestion = prompt.Question{
		Name:    "search-engine",
		Message: "Does your JHipster app use Elasticsearch?",
		Default: "false",
	}

	devScreensQuestion = prompt.Question{
		Name:        "dev-screens",
		Message:     "Would you like Ignite Development Screens?",
		Description: "Development screens let you explore the app's components, fonts and API calls.",
		Default:     "true",
	}

	animatableQuestion = prompt.Question{
		Name:    "animatable",
		Message: "Would you like to use react-native-animatable?",
		Default: "false",
	}
)

// ResolveOptions validates opts and asks for every option still unset, in a
// fixed order. Answers are stored in opts.
func (o *Orchestrator) ResolveOptions(ctx context.Context, opts *models.BootstrapOptions) error {
	opts.Name = strings.TrimSpace(opts.Name)
	if opts.Name == "" {
		return &models.ValidationError{Field: "name", Message: "A name is required."}
	}
	if !appNamePattern.MatchString(opts.Name) {
		return &models.ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("%q is not a valid app name (letters and digits only, starting with a letter)", opts.Name),
		}
	}

	if opts.AuthType == "" {
		answer, err := o.deps.Prompter.Select(ctx, authTypeQuestion)
		if err != nil {
			return err
		}
		auth, err := models.ParseAuthType(answer)
		if err != nil {
			return &models.ValidationError{Field: authTypeQuestion.Name, Message: err.Error()}
		}
		opts.AuthType = auth
	}

	for _, ask := range []struct {
		q      prompt.Question
		target **bool
	}{
		{searchEngineQuestion, &opts.SearchEngine},
		{devScreensQuestion, &opts.DevScreens},
		{animatableQuestion, &opts.Animatable},
	} {
		if *ask.target != nil {
			continue
		}
		answer, err := o.deps.Prompter.Confirm(ctx, ask.q)
		if err != nil {
			return err
		}
		*ask.target = &answer
	}

	if opts.Boilerplate == "" {
		opts.Boilerplate = defaultBoilerplate
	}

	o.logger.Debug("options resolved",
		"name", opts.Name,
		"authType", opts.AuthType,
		"searchEngine", models.BoolValue(opts.SearchEngine),
		"devScreens", models.BoolValue(opts.DevScreens),
		"animatable", models.BoolValue(opts.Animatable),
		"skipGit", opts.SkipGit,
		"skipLint", opts.SkipLint,
	)

	return nil
}
