package naisite

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nurseassist/naisite/analytics"
	"github.com/nurseassist/naisite/leads"
	"github.com/nurseassist/naisite/views"
)

const tooManySubmissions = "Too many submissions. Please try again in a minute."

func (a *App) contactPage(c echo.Context, form leads.ContactForm, errs leads.FieldErrors) views.ContactPage {
	return views.ContactPage{
		Page: a.page(c, views.Meta{
			Title:       a.title("Contact Us"),
			Description: "Get in touch about NCLEX-NGN and OSCE preparation courses.",
			URL:         views.AbsURL(a.site(), "/pages/contact"),
		}),
		Form:      form,
		Errors:    errs,
		Challenge: a.challenger.Issue(),
		Courses:   a.catalog().Courses,
		Sent:      c.QueryParam("sent") == "1",
	}
}

func (a *App) referralPage(c echo.Context, form leads.ReferralForm, errs leads.FieldErrors) views.ReferralPage {
	ref := a.catalog().Site.Referral
	return views.ReferralPage{
		Page: a.page(c, views.Meta{
			Title:       a.title("Refer a Friend"),
			Description: ref.Headline,
			URL:         views.AbsURL(a.site(), "/pages/referral-form"),
		}),
		Form:      form,
		Errors:    errs,
		Challenge: a.challenger.Issue(),
		Courses:   a.catalog().Courses,
		Referral:  ref,
		Sent:      c.QueryParam("sent") == "1",
	}
}

func (a *App) handleContact(c echo.Context) error {
	form := leads.ContactForm{Course: c.QueryParam("course")}
	return Render(c, a.Views.Contact(a.contactPage(c, form, nil)))
}

func (a *App) handleContactSubmit(c echo.Context) error {
	if !a.formLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, tooManySubmissions)
	}
	var form leads.ContactForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	form.Normalize()
	if errs := form.Validate(a.challenger); len(errs) > 0 {
		form.Answer = ""
		return RenderStatus(c, http.StatusUnprocessableEntity, a.Views.Contact(a.contactPage(c, form, errs)))
	}
	if err := a.saveLead(c, form.Lead()); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/pages/contact?sent=1")
}

func (a *App) handleReferral(c echo.Context) error {
	form := leads.ReferralForm{Course: c.QueryParam("course")}
	return Render(c, a.Views.Referral(a.referralPage(c, form, nil)))
}

func (a *App) handleReferralSubmit(c echo.Context) error {
	if !a.formLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, tooManySubmissions)
	}
	var form leads.ReferralForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	form.Normalize()
	if errs := form.Validate(a.challenger); len(errs) > 0 {
		form.Answer = ""
		return RenderStatus(c, http.StatusUnprocessableEntity, a.Views.Referral(a.referralPage(c, form, errs)))
	}
	if err := a.saveLead(c, form.Lead()); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/pages/referral-form?sent=1")
}

// saveLead stores l and notifies the team. A failed notification is logged
// only; the lead is already safe in the database.
func (a *App) saveLead(c echo.Context, l leads.Lead) error {
	ctx := c.Request().Context()
	l.IPHash = analytics.HashIP(c.RealIP())
	if err := a.Store.SaveLead(ctx, l); err != nil {
		return err
	}
	if err := a.notifier.Notify(ctx, l); err != nil {
		a.Logger.Error("notify lead", zap.String("id", l.ID), zap.String("kind", string(l.Kind)), zap.Error(err))
	}
	a.track(c, analytics.EventLead, string(l.Kind))
	return nil
}
