package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/jakoblorz/go-ignite-jhipster/internal/render"
	"github.com/jakoblorz/go-ignite-jhipster/internal/tui"
)

const setupGuideURL = "https://facebook.github.io/react-native/docs/getting-started.html"

const nextStepsTemplate = `# Time to get cooking!

To run in iOS:

    cd {{ .Name }}
    react-native run-ios

{{ if .Android -}}
To run in Android:
{{- else -}}
To run in Android, make sure you've followed the latest react-native setup instructions at {{ .GuideURL }} before using ignite.
You won't be able to run **react-native run-android** successfully until you have. Then:
{{- end }}

    cd {{ .Name }}
    react-native run-android

To see what ignite can do for you:

    cd {{ .Name }}
    ignite
`

// NextSteps renders the closing message as markdown.
func NextSteps(r *render.Renderer, name string, android bool) (string, error) {
	md, err := r.RenderString("next-steps", nextStepsTemplate, struct {
		Name     string
		Android  bool
		GuideURL string
	}{name, android, setupGuideURL})
	if err != nil {
		return "", err
	}
	return string(md), nil
}

func (o *Orchestrator) nextSteps(_ context.Context, r *Run) error {
	elapsed := time.Since(r.Started).Seconds()
	o.out.Success("ignited %s in %.2fs", tui.HighlightStyle.Render(r.Options.Name), elapsed)

	md, err := NextSteps(o.deps.Renderer, r.Options.Name, o.androidInstalled())
	if err != nil {
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(o.markdownStyle),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	o.out.Info("%s", out)
	return nil
}

// androidInstalled reports whether $ANDROID_HOME/tools is a directory.
func (o *Orchestrator) androidInstalled() bool {
	home := o.getenv("ANDROID_HOME")
	if home == "" {
		return false
	}
	info, err := o.deps.FS.Stat(filepath.Join(home, "tools"))
	return err == nil && info.IsDir()
}
