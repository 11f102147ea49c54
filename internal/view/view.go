package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Rohith-kulkarni/qwipo-app/internal/model"
	"github.com/labstack/echo/v4"
)

// Page template names
const (
	PageList    = "list.html"
	PageCreate  = "create.html"
	PageProfile = "profile.html"
	PageConfirm = "confirm.html"
	PageError   = "error.html"
)

const layoutTemplate = "layout.html"

//go:embed templates/*.html
var templatesFS embed.FS

type ListPage struct {
	Customers []*model.Customer
	Query     model.ListQuery
	PrevURL   string
	NextURL   string
	ClearURL  string
}

type CustomerForm struct {
	FirstName string `form:"firstName" validate:"required"`
	LastName  string `form:"lastName" validate:"required"`
	Phone     string `form:"phone" validate:"required,phone"`
	Address   string `form:"address" validate:"required"`
	City      string `form:"city" validate:"required"`
	State     string `form:"state" validate:"required"`
	Pin       string `form:"pin" validate:"required,pin"`
}

type CreatePage struct {
	Form            CustomerForm
	Error           string
	Success         string
	RedirectURL     string
	RedirectDelayMs int64
	RedirectSeconds int64
}

type AddressForm struct {
	Line1 string `form:"line1" validate:"required"`
	City  string `form:"city" validate:"required"`
	State string `form:"state" validate:"required"`
	Pin   string `form:"pin" validate:"pin"`
}

type ProfilePage struct {
	State      *model.ProfileState
	Addresses  []model.Address
	NewAddress AddressForm
	Alert      string
}

type ConfirmPage struct {
	Message   string
	ActionURL string
	CancelURL string
}

type ErrorPage struct {
	Message string
}

// Renderer renders pages from embedded templates, it implements echo.Renderer
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := []string{PageList, PageCreate, PageProfile, PageConfirm, PageError}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		tmpl, err := template.New(p).ParseFS(templatesFS, "templates/"+layoutTemplate, "templates/"+p)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s - %w", p, err)
		}
		r.pages[p] = tmpl
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %s is not registered", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
