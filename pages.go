package florix

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/dmisol/florix/defs"
	"github.com/valyala/fasthttp"
)

//go:embed templates/*.html
var templateFS embed.FS

type navItem struct {
	Name, Href string
}

var nav = []navItem{
	{"Home", "/"},
	{"About", "/about"},
	{"Services", "/services"},
	{"Contact", "/contact"},
}

type pageData struct {
	Title     string
	Path      string
	Nav       []navItem
	Offerings []defs.Offering
	Offering  defs.Offering
	Year      int
}

// route -> template file
var routes = map[string]string{
	"/":         "home.html",
	"/about":    "about.html",
	"/contact":  "contact.html",
	"/services": "services.html",
}

var titles = map[string]string{
	"/":         "IT services that move your business",
	"/about":    "About us",
	"/contact":  "Get in touch",
	"/services": "Our services",
}

func parsePages() (map[string]*template.Template, error) {
	base, err := template.ParseFS(templateFS, "templates/layout.html", "templates/form.html")
	if err != nil {
		return nil, err
	}
	pages := make(map[string]*template.Template)
	for _, name := range []string{"home.html", "about.html", "contact.html", "services.html", "service.html", "notfound.html"} {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if pages[name], err = t.ParseFS(templateFS, "templates/"+name); err != nil {
			return nil, err
		}
	}
	return pages, nil
}

func (s *Site) page(r *fasthttp.RequestCtx, path string) {
	data := pageData{
		Path:      path,
		Nav:       nav,
		Offerings: defs.Offerings,
		Year:      time.Now().Year(),
	}

	name, ok := routes[path]
	switch {
	case ok:
		data.Title = titles[path]
	case strings.HasPrefix(path, "/services/"):
		o, found := defs.OfferingBySlug(strings.TrimPrefix(path, "/services/"))
		if !found {
			s.notFound(r, data)
			return
		}
		name = "service.html"
		data.Title = o.Title
		data.Offering = o
	default:
		s.notFound(r, data)
		return
	}
	s.render(r, fasthttp.StatusOK, name, data)
}

func (s *Site) notFound(r *fasthttp.RequestCtx, data pageData) {
	data.Title = "Page not found"
	s.render(r, fasthttp.StatusNotFound, "notfound.html", data)
}

func (s *Site) render(r *fasthttp.RequestCtx, status int, name string, data pageData) {
	var b bytes.Buffer
	if err := s.pages[name].ExecuteTemplate(&b, "layout", data); err != nil {
		s.Println("render", name, err)
		r.Error("can't render page", fasthttp.StatusInternalServerError)
		return
	}
	r.SetStatusCode(status)
	r.SetContentType("text/html; charset=utf-8")
	r.SetBody(b.Bytes())
}
