package template

import (
	"html/template"
	"log"
	"net/http"
	"time"
)

// Global template variable accessible to other packages
var Templates *template.Template

// InitTemplates parses every page and component once at startup.
func InitTemplates() {
	log.Printf("🚀 Initializing templates...")

	funcMap := template.FuncMap{
		"fmtFecha": func(iso string) string {
			t, err := time.Parse(time.RFC3339, iso)
			if err != nil {
				return iso
			}
			return t.Format("02/01/2006 15:04")
		},
	}

	files := []string{
		"templates/login.html",
		"templates/register.html",
		"templates/home.html",
		"templates/reservas.html",
		"templates/redirect.html",
		"templates/components/header.html",
	}

	var err error
	Templates, err = template.New("").Funcs(funcMap).ParseFiles(files...)
	if err != nil {
		log.Fatalf("❌ Could not parse templates: %v", err)
	}

	log.Printf("✅ Templates initialized successfully")
	log.Printf("📋 Available templates: %v", Templates.DefinedTemplates())
}

func RenderTemplate(w http.ResponseWriter, name string, data interface{}) error {
	err := Templates.ExecuteTemplate(w, name, data)
	if err != nil {
		log.Printf("❌ Error rendering template %s: %v", name, err)
	}
	return err
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{templates: Templates}
}

func (r *Renderer) Render(w http.ResponseWriter, name string, data interface{}) error {
	return RenderTemplate(w, name, data)
}
