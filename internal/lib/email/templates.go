package email

import (
	"bytes"
	"embed"
	"html/template"
	"sync"

	"github.com/pkg/errors"
)

// Template names an embedded HTML email template.
type Template string

const (
	TemplateNewFollower Template = "new_follower"
	TemplateListComment Template = "list_comment"
	TemplateListLike    Template = "list_like"
	TemplateTest        Template = "test"
)

// Templates lists every embedded template.
var Templates = []Template{
	TemplateNewFollower,
	TemplateListComment,
	TemplateListLike,
	TemplateTest,
}

//go:embed templates/*.html
var templateFS embed.FS

var (
	parseOnce sync.Once
	parsed    *template.Template
	parseErr  error
)

func loadTemplates() (*template.Template, error) {
	parseOnce.Do(func() {
		parsed, parseErr = template.ParseFS(templateFS, "templates/*.html")
	})
	return parsed, parseErr
}

// Render executes the named template with data.
func Render(name Template, data map[string]string) (string, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return "", errors.Wrap(err, "failed to parse email templates")
	}

	t := tmpl.Lookup(string(name) + ".html")
	if t == nil {
		return "", errors.Errorf("unknown email template %s", name)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}

	return body.String(), nil
}
