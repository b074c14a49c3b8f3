package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"math"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

// Page template names.
const (
	PageHome     = "home"
	PageListings = "listings"
	PageDetail   = "detail"
	PageSaved    = "saved"
	PageNotFound = "not_found"
	PageError    = "error"
)

var pageNames = []string{PageHome, PageListings, PageDetail, PageSaved, PageNotFound, PageError}

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	mimeHTML = "text/html"
	mimeCSS  = "text/css"
)

// Renderer executes the embedded page templates and minifies the output.
type Renderer struct {
	siteName string
	siteURL  string
	orgName  string
	devMode  bool

	pages    map[string]*template.Template
	minifier *minify.M
}

func New(siteName, siteURL string, devMode bool) (*Renderer, error) {
	funcs := templateFuncs()

	base, err := template.New("base").Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse base templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone base for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = t
	}

	m := minify.New()
	m.Add(mimeHTML, &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	m.AddFunc(mimeCSS, css.Minify)

	return &Renderer{
		siteName: siteName,
		siteURL:  siteURL,
		orgName:  utils.OrganizationName,
		devMode:  devMode,
		pages:    pages,
		minifier: m,
	}, nil
}

func (r *Renderer) DevMode() bool { return r.devMode }

// Render writes page name with the given status. data must embed Layout;
// the renderer fills in the site-wide fields.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data PageData) {
	t, ok := r.pages[name]
	if !ok {
		utils.Logger.WithField("page", name).Error("Unknown page template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	l := data.layout()
	l.SiteName = r.siteName
	l.SiteURL = r.siteURL
	l.OrganizationName = r.orgName
	l.Year = time.Now().Year()
	l.ensureSession()

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		utils.Logger.WithFields(logrus.Fields{"page": name}).WithError(err).Error("Failed to render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	body := buf.Bytes()
	if minified, err := r.minifier.Bytes(mimeHTML, body); err == nil {
		body = minified
	} else {
		utils.Logger.WithField("page", name).WithError(err).Warn("HTML minification failed; serving raw markup")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// StaticHandler serves the embedded stylesheet, minified once at startup.
func (r *Renderer) StaticHandler() (http.Handler, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	raw, err := fs.ReadFile(sub, "site.css")
	if err != nil {
		return nil, err
	}
	styles, err := r.minifier.Bytes(mimeCSS, raw)
	if err != nil {
		styles = raw
	}

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if path.Base(req.URL.Path) != "site.css" {
			http.NotFound(w, req)
			return
		}
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(styles)
	}), nil
}

/* ---------------------------------------------------------------------------
   Template helpers
--------------------------------------------------------------------------- */

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"money":        FormatMoney,
		"typeLabel":    TypeLabel,
		"statusLabel":  StatusLabel,
		"bedsLabel":    BedsLabel,
		"bathsLabel":   BathsLabel,
		"primaryImage": primaryImage,
		"seq":          seq,
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
	}
}

// FormatMoney renders whole dollars with thousands separators. Printers and
// casers hold state, so each call builds its own.
func FormatMoney(amount int64) string {
	return message.NewPrinter(language.English).Sprintf("$%d", amount)
}

func TypeLabel(t models.PropertyType) string {
	return cases.Title(language.English).String(string(t))
}

func StatusLabel(s models.PropertyStatus) string {
	switch s {
	case models.PropertyStatusUnderContract:
		return "Under Contract"
	case models.PropertyStatusSold:
		return "Sold"
	default:
		return "Available"
	}
}

func BedsLabel(n *int) string {
	if n == nil {
		return ""
	}
	if *n == 1 {
		return "1 bed"
	}
	return strconv.Itoa(*n) + " beds"
}

func BathsLabel(n *float64) string {
	if n == nil {
		return ""
	}
	v := strconv.FormatFloat(*n, 'f', -1, 64)
	if math.Abs(*n-1) < 1e-9 {
		return v + " bath"
	}
	return v + " baths"
}

func primaryImage(p *models.Property) *models.PropertyImage {
	img, ok := p.PrimaryImage()
	if !ok {
		return nil
	}
	return &img
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
