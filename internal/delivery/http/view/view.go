package view

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"patient-vitals-service/internal/delivery/dto"
	"patient-vitals-service/internal/session"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page is the data every template receives.
type Page struct {
	Flashes  []session.Flash
	Username string
}

// DashboardPage adds the record listing and the one-shot calculator
// result to the common page data.
type DashboardPage struct {
	Page
	Patients    []dto.PatientResponse
	SearchQuery string
	WaistResult *session.WaistResult
}

// Renderer holds the parsed page templates. Markup is deliberately
// minimal; the interesting behavior lives behind the handlers.
type Renderer struct {
	templates map[string]*template.Template
	log       *logrus.Logger
}

var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("02.01.2006")
	},
}

var pages = []string{"home", "signup", "login", "dashboard"}

func NewRenderer(log *logrus.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page+".html").
			Funcs(templateFuncs).
			ParseFS(templatesFS, "templates/"+page+".html", "templates/flashes.html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return &Renderer{templates: templates, log: log}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, name string, data interface{}) {
	tmpl, ok := r.templates[name]
	if !ok {
		r.log.Errorf("Unknown template: %s", name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		r.log.Errorf("Failed to render template %s: %+v", name, err)
	}
}
