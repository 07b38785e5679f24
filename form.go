package inkpost

import (
	"errors"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/labstack/echo/v4"
)

// PostForm holds the user-submitted editor fields before they become a
// BlogPost. Field names match the form input names.
type PostForm struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Author   string `json:"author"`
	ImgURL   string `json:"img_url"`
	Body     string `json:"body"`
}

// FieldErrors maps a form field name to a user-facing error message.
// An empty map means the submission is valid.
type FieldErrors map[string]string

// FormFromContext reads the editor fields from the request, trimming
// surrounding whitespace. Body keeps its inner markup verbatim.
func FormFromContext(c echo.Context) PostForm {
	return PostForm{
		Title:    strings.TrimSpace(c.FormValue("title")),
		Subtitle: strings.TrimSpace(c.FormValue("subtitle")),
		Author:   strings.TrimSpace(c.FormValue("author")),
		ImgURL:   strings.TrimSpace(c.FormValue("img_url")),
		Body:     strings.TrimSpace(c.FormValue("body")),
	}
}

// Validate checks the required-field and URL-format rules and returns
// per-field error messages, or nil when the form is acceptable.
func (f PostForm) Validate() FieldErrors {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Title,
			validation.Required.Error("Title is required"),
			validation.RuneLength(0, 250).Error("Title must be at most 250 characters"),
		),
		validation.Field(&f.Subtitle,
			validation.Required.Error("Subtitle is required"),
			validation.RuneLength(0, 250).Error("Subtitle must be at most 250 characters"),
		),
		validation.Field(&f.Author,
			validation.Required.Error("Author name is required"),
			validation.RuneLength(0, 250).Error("Author name must be at most 250 characters"),
		),
		validation.Field(&f.ImgURL,
			validation.Required.Error("Image URL is required"),
			validation.RuneLength(0, 250).Error("Image URL must be at most 250 characters"),
			is.URL.Error("Image URL must be a valid URL"),
			validation.By(absoluteURL),
		),
		validation.Field(&f.Body,
			validation.Required.Error("Blog content is required"),
		),
	)
	if err == nil {
		return nil
	}
	out := FieldErrors{}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		for field, ferr := range fieldErrs {
			out[field] = ferr.Error()
		}
		return out
	}
	// Not a per-field error set: a rule was misconfigured. Surface it on
	// the form as a whole rather than swallowing it.
	out["form"] = err.Error()
	return out
}

// Post builds a BlogPost from validated form values. Date is left for the
// caller: it is set once at creation and preserved on edit.
func (f PostForm) Post() BlogPost {
	return BlogPost{
		Title:    f.Title,
		Subtitle: f.Subtitle,
		Author:   f.Author,
		ImgURL:   f.ImgURL,
		Body:     f.Body,
	}
}

// FormFromPost pre-fills the editor with an existing post's fields.
func FormFromPost(p BlogPost) PostForm {
	return PostForm{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Author:   p.Author,
		ImgURL:   p.ImgURL,
		Body:     p.Body,
	}
}

// absoluteURL requires a scheme and host, which is.URL alone does not.
func absoluteURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("Image URL must include a scheme and host")
	}
	return nil
}
