package views

import (
	"encoding/json"
	"strings"

	"github.com/nurseassist/naisite/content"
)

const schemaContext = "https://schema.org"

func marshalLD(data map[string]any) string {
	data["@context"] = schemaContext
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// AbsURL joins a site-relative path onto the site URL.
func AbsURL(site content.Site, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(site.URL, "/") + "/" + strings.TrimPrefix(path, "/")
}

func postalAddress(a content.Address) map[string]any {
	return map[string]any{
		"@type":           "PostalAddress",
		"streetAddress":   a.Street,
		"addressLocality": a.Locality,
		"addressRegion":   a.Region,
		"postalCode":      a.PostalCode,
		"addressCountry":  a.Country,
	}
}

func orgRef(site content.Site) map[string]any {
	return map[string]any{"@type": "Organization", "name": site.Name, "url": site.URL}
}

// OrganizationJSONLD describes the institute as an EducationalOrganization.
func OrganizationJSONLD(site content.Site, logoURL string) string {
	data := map[string]any{
		"@type":         "EducationalOrganization",
		"name":          site.Name,
		"legalName":     site.LegalName,
		"alternateName": "NAI",
		"url":           site.URL,
		"description":   site.Description,
		"address":       postalAddress(site.Address),
		"contactPoint": map[string]any{
			"@type":             "ContactPoint",
			"telephone":         site.Phone,
			"email":             site.Email,
			"contactType":       "customer service",
			"availableLanguage": "English",
		},
		"foundingDate": site.FoundingDate,
		"areaServed":   map[string]any{"@type": "Country", "name": site.AreaServed},
	}
	if logoURL != "" {
		data["logo"] = logoURL
	}
	if len(site.SameAs) > 0 {
		data["sameAs"] = site.SameAs
	}
	return marshalLD(data)
}

// WebSiteJSONLD describes the site with a SearchAction over the news listing.
func WebSiteJSONLD(site content.Site) string {
	return marshalLD(map[string]any{
		"@type":       "WebSite",
		"name":        site.Name,
		"url":         site.URL,
		"description": site.Description,
		"publisher":   map[string]any{"@type": "Organization", "name": site.Name},
		"potentialAction": map[string]any{
			"@type": "SearchAction",
			"target": map[string]any{
				"@type":       "EntryPoint",
				"urlTemplate": AbsURL(site, "/blogs/news?search={search_term_string}"),
			},
			"query-input": "required name=search_term_string",
		},
	})
}

// FAQPageJSONLD lists every question of set.
func FAQPageJSONLD(set content.FAQSet) string {
	items := make([]map[string]any, len(set.Items))
	for i, f := range set.Items {
		items[i] = map[string]any{
			"@type":          "Question",
			"name":           f.Question,
			"acceptedAnswer": map[string]any{"@type": "Answer", "text": f.Answer},
		}
	}
	return marshalLD(map[string]any{"@type": "FAQPage", "mainEntity": items})
}

// ReviewBodyLength is how much of a testimonial goes into structured data.
const ReviewBodyLength = 200

// ReviewPageJSONLD describes the testimonials as five-star reviews of the
// organization.
func ReviewPageJSONLD(site content.Site, pageURL string, ts []content.Testimonial) string {
	reviews := make([]map[string]any, len(ts))
	for i, t := range ts {
		reviews[i] = map[string]any{
			"@type":        "Review",
			"author":       map[string]any{"@type": "Person", "name": t.Name},
			"reviewBody":   t.Excerpt(ReviewBodyLength),
			"reviewRating": map[string]any{"@type": "Rating", "ratingValue": 5, "bestRating": 5},
			"itemReviewed": map[string]any{"@type": "EducationalOrganization", "name": site.Name},
			"about":        t.Course,
		}
	}
	return marshalLD(map[string]any{
		"@type":      "WebPage",
		"name":       "Student Testimonials",
		"url":        pageURL,
		"mainEntity": map[string]any{"@type": "ItemList", "numberOfItems": len(ts), "itemListElement": reviews},
		"publisher":  orgRef(site),
	})
}

// BlogPostingJSONLD describes an article.
func BlogPostingJSONLD(site content.Site, a content.Article, pageURL, imageURL string) string {
	data := map[string]any{
		"@type":          "BlogPosting",
		"headline":       a.Title,
		"description":    a.Excerpt,
		"datePublished":  a.Date,
		"dateModified":   a.Date,
		"url":            pageURL,
		"image":          imageURL,
		"articleSection": a.Category,
		"inLanguage":     "en-AU",
		"author":         map[string]any{"@type": "Organization", "name": a.Author},
		"publisher":      orgRef(site),
		"mainEntityOfPage": map[string]any{
			"@type": "WebPage",
			"@id":   pageURL,
		},
	}
	if len(a.Tags) > 0 {
		data["keywords"] = strings.Join(a.Tags, ", ")
	}
	return marshalLD(data)
}

// CourseJSONLD describes one catalog course with its AUD offer.
func CourseJSONLD(site content.Site, c content.Course) string {
	availability := "https://schema.org/InStock"
	if c.Disabled {
		availability = "https://schema.org/SoldOut"
	}
	data := map[string]any{
		"@type":               "Course",
		"name":                c.Title,
		"description":         c.Description,
		"courseCode":          c.Slug,
		"url":                 AbsURL(site, content.CoursesLink),
		"provider":            orgRef(site),
		"educationalLevel":    "Professional Development",
		"teaches":             c.Features,
		"coursePrerequisites": c.Requirements,
		"timeRequired":        c.Duration,
		"inLanguage":          "en-AU",
		"audience":            map[string]any{"@type": "Audience", "audienceType": "Internationally Qualified Nurses"},
	}
	if amount := c.PriceAmount(); amount != "" {
		data["offers"] = map[string]any{
			"@type":         "Offer",
			"price":         amount,
			"priceCurrency": "AUD",
			"availability":  availability,
		}
	}
	return marshalLD(data)
}

// Crumb is one breadcrumb entry. URL is site-relative.
type Crumb struct {
	Name string
	URL  string
}

// BreadcrumbJSONLD describes the breadcrumb trail of a page.
func BreadcrumbJSONLD(site content.Site, crumbs []Crumb) string {
	items := make([]map[string]any, len(crumbs))
	for i, c := range crumbs {
		items[i] = map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
			"item":     AbsURL(site, c.URL),
		}
	}
	return marshalLD(map[string]any{"@type": "BreadcrumbList", "itemListElement": items})
}

// PersonJSONLD describes a team member.
func PersonJSONLD(site content.Site, m content.TeamMember, imageURL string) string {
	data := map[string]any{
		"@type":       "Person",
		"name":        m.Name,
		"jobTitle":    m.Role,
		"description": m.Specialization,
		"worksFor":    orgRef(site),
	}
	if imageURL != "" {
		data["image"] = imageURL
	}
	return marshalLD(data)
}
