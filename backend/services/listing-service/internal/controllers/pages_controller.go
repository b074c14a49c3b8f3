package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/harborview/realestate/backend/services/listing-service/internal/dtos"
	"github.com/harborview/realestate/backend/services/listing-service/internal/routes"
	"github.com/harborview/realestate/backend/services/listing-service/internal/search"
	"github.com/harborview/realestate/backend/services/listing-service/internal/services"
	"github.com/harborview/realestate/backend/services/listing-service/internal/session"
	"github.com/harborview/realestate/backend/services/listing-service/internal/views"
	"github.com/harborview/realestate/backend/shared/go-middleware"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

const inquirySentParam = "inquiry"

// PagesController serves the server-rendered site.
type PagesController struct {
	properties services.PropertyService
	saved      services.SavedService
	inquiries  services.InquiryService
	pipeline   *search.Pipeline
	sessions   *session.Loader
	views      *views.Renderer
}

func NewPagesController(
	properties services.PropertyService,
	saved services.SavedService,
	inquiries services.InquiryService,
	pipeline *search.Pipeline,
	sessions *session.Loader,
	renderer *views.Renderer,
) *PagesController {
	return &PagesController{
		properties: properties,
		saved:      saved,
		inquiries:  inquiries,
		pipeline:   pipeline,
		sessions:   sessions,
		views:      renderer,
	}
}

func (c *PagesController) layout(r *http.Request, title string) views.Layout {
	st := c.sessions.Load(r.Context(), currentUserID(r), session.ThemeFromRequest(r))
	return views.Layout{Title: title, Path: r.URL.RequestURI(), Session: st}
}

// renderError shows not-found failures as the 404 page and everything else
// as the error page with the normalized status.
func (c *PagesController) renderError(w http.ResponseWriter, l views.Layout, err error) {
	report := utils.NormalizeError(err, c.views.DevMode())
	if report.StatusCode == http.StatusNotFound {
		c.renderNotFound(w, l, report.Message)
		return
	}
	l.Title = "Error"
	c.views.Render(w, report.StatusCode, views.PageError, &views.ErrorPage{Layout: l, Report: report})
}

func (c *PagesController) renderNotFound(w http.ResponseWriter, l views.Layout, msg string) {
	if msg == "" {
		msg = "The page you are looking for does not exist."
	}
	l.Title = "Not Found"
	c.views.Render(w, http.StatusNotFound, views.PageNotFound, &views.NotFoundPage{Layout: l, Message: msg})
}

func (c *PagesController) requireSignIn(w http.ResponseWriter, l views.Layout, msg string) {
	c.renderError(w, l, utils.NewAuthenticationError(msg))
}

// GET /
func (c *PagesController) HomeHandler(w http.ResponseWriter, r *http.Request) {
	l := c.layout(r, "")
	c.views.Render(w, http.StatusOK, views.PageHome, &views.HomePage{
		Layout:   l,
		Featured: c.properties.Featured(r.Context()),
	})
}

// GET /properties
func (c *PagesController) ListingsHandler(w http.ResponseWriter, r *http.Request) {
	l := c.layout(r, "Properties")
	res := c.pipeline.Run(r.Context(), r.URL.Query())
	c.views.Render(w, http.StatusOK, views.PageListings, views.NewListingsPage(l, res))
}

// GET /properties/{id}
func (c *PagesController) DetailHandler(w http.ResponseWriter, r *http.Request) {
	l := c.layout(r, "")
	id, ok := pathUUID(r, "id")
	if !ok {
		c.renderNotFound(w, l, "Property not found")
		return
	}

	detail, err := c.properties.Detail(r.Context(), id, l.Session.UserID)
	if err != nil {
		c.renderError(w, l, err)
		return
	}
	l.Title = detail.Property.Title
	c.views.Render(w, http.StatusOK, views.PageDetail, &views.DetailPage{
		Layout:      l,
		Property:    detail.Property,
		IsSaved:     detail.IsSaved,
		InquirySent: r.URL.Query().Get(inquirySentParam) == "sent",
	})
}

// POST /properties/{id}/save
func (c *PagesController) ToggleSaveHandler(w http.ResponseWriter, r *http.Request) {
	l := c.layout(r, "")
	if !l.Session.Authenticated() {
		c.requireSignIn(w, l, "Sign in to save properties")
		return
	}
	id, ok := pathUUID(r, "id")
	if !ok {
		c.renderNotFound(w, l, "Property not found")
		return
	}

	saved, err := c.saved.Toggle(r.Context(), l.Session.UserID, id)
	if err != nil {
		c.renderError(w, l, err)
		return
	}
	l.Session.MarkSaved(id, saved)
	utils.Logger.WithFields(logrus.Fields{
		"saved":       saved,
		"saved_count": l.Session.SavedCount(),
	}).Debugf("Toggled saved state of %s from page", id)

	_ = r.ParseForm()
	http.Redirect(w, r, localRedirect(r.PostFormValue("redirect"), routes.PropertyPath(id.String())), http.StatusSeeOther)
}

// POST /properties/{id}/inquiries
func (c *PagesController) InquiryHandler(w http.ResponseWriter, r *http.Request) {
	l := c.layout(r, "")
	if !l.Session.Authenticated() {
		c.requireSignIn(w, l, "Sign in to contact an agent")
		return
	}
	id, ok := pathUUID(r, "id")
	if !ok {
		c.renderNotFound(w, l, "Property not found")
		return
	}
	if err := r.ParseForm(); err != nil {
		c.renderError(w, l, utils.NewValidationError("Invalid form submission", nil))
		return
	}

	req := dtos.CreateInquiryRequest{
		PropertyID: id.String(),
		Name:       r.PostFormValue("name"),
		Email:      r.PostFormValue("email"),
		Message:    r.PostFormValue("message"),
	}
	if phone := strings.TrimSpace(r.PostFormValue("phone")); phone != "" {
		req.Phone = &phone
	}

	if _, err := c.inquiries.Submit(r.Context(), l.Session.UserID, req); err != nil {
		if utils.KindOf(err) != utils.KindValidation {
			c.renderError(w, l, err)
			return
		}
		c.redisplayInquiry(w, r, l, id, req, err)
		return
	}

	http.Redirect(w, r, routes.PropertyPath(id.String())+"?"+inquirySentParam+"=sent", http.StatusSeeOther)
}

// redisplayInquiry re-renders the detail page with the submitted form and
// the validation message.
func (c *PagesController) redisplayInquiry(w http.ResponseWriter, r *http.Request, l views.Layout, id uuid.UUID, req dtos.CreateInquiryRequest, cause error) {
	detail, err := c.properties.Detail(r.Context(), id, l.Session.UserID)
	if err != nil {
		c.renderError(w, l, err)
		return
	}
	l.Title = detail.Property.Title
	c.views.Render(w, http.StatusBadRequest, views.PageDetail, &views.DetailPage{
		Layout:    l,
		Property:  detail.Property,
		IsSaved:   detail.IsSaved,
		Form:      req,
		FormError: cause.Error(),
	})
}

// GET /saved
func (c *PagesController) SavedHandler(w http.ResponseWriter, r *http.Request) {
	l := c.layout(r, "Saved Properties")
	if !l.Session.Authenticated() {
		c.requireSignIn(w, l, "Sign in to see your saved properties")
		return
	}

	props, err := c.saved.List(r.Context(), l.Session.UserID)
	if err != nil {
		c.renderError(w, l, err)
		return
	}
	c.views.Render(w, http.StatusOK, views.PageSaved, &views.SavedPage{Layout: l, Properties: props})
}

// POST /theme
func (c *PagesController) ThemeHandler(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	st := session.Anonymous(session.ThemeFromRequest(r))
	st.SetTheme(r.PostFormValue("theme"))
	session.WriteThemeCookie(w, st.Theme)
	http.Redirect(w, r, localRedirect(r.PostFormValue("redirect"), routes.Home), http.StatusSeeOther)
}

// PanicHandler answers a recovered panic: JSON for API paths, the error
// page for everything else. It builds an anonymous layout so the store is
// not touched again.
func (c *PagesController) PanicHandler(w http.ResponseWriter, r *http.Request, report utils.ErrorReport) {
	if strings.HasPrefix(r.URL.Path, routes.APIPrefix) {
		middleware.RespondPanicJSON(w, r, report)
		return
	}
	if !c.views.DevMode() {
		report.Message = "An unexpected error occurred"
	}
	l := views.Layout{Title: "Error", Path: r.URL.RequestURI(), Session: session.Anonymous(session.ThemeFromRequest(r))}
	c.views.Render(w, http.StatusInternalServerError, views.PageError, &views.ErrorPage{Layout: l, Report: report})
}

func (c *PagesController) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	c.renderNotFound(w, c.layout(r, ""), "")
}
