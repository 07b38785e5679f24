package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/inkpost/inkpost"
)

var cfg = inkpost.SiteConfig{Name: "Test Blog", Description: "A test blog", Author: "A. Author"}

func render(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var b bytes.Buffer
	if err := cmp.Render(context.Background(), &b); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return b.String()
}

func TestHomeEscapesPostFields(t *testing.T) {
	posts := []inkpost.BlogPost{{
		ID:       1,
		Title:    `<script>alert("x")</script>`,
		Subtitle: "S1",
		Date:     "June 03, 2024",
		Author:   "A1",
		ImgURL:   "https://x.test/i.png",
	}}
	out := render(t, Home(cfg, posts, ""))

	if strings.Contains(out, `<script>alert`) {
		t.Error("title not escaped")
	}
	if !strings.Contains(out, `/show_post/1`) {
		t.Error("missing post link")
	}
}

func TestHomeShowsFlash(t *testing.T) {
	out := render(t, Home(cfg, nil, "Post deleted."))
	if !strings.Contains(out, "Post deleted.") {
		t.Error("flash message missing")
	}
	if !strings.Contains(out, "No posts yet") {
		t.Error("empty state missing")
	}
}

func TestPostRendersBodyRaw(t *testing.T) {
	post := inkpost.BlogPost{
		ID:       7,
		Title:    "T1",
		Subtitle: "S1",
		Date:     "June 03, 2024",
		Body:     "<p>rich <strong>text</strong></p>",
		Author:   "A1",
		ImgURL:   "https://x.test/i.png",
	}
	out := render(t, Post(cfg, post, "tok"))

	if !strings.Contains(out, "<p>rich <strong>text</strong></p>") {
		t.Error("body markup should be rendered verbatim")
	}
	if !strings.Contains(out, `action="/delete/7"`) {
		t.Error("delete form missing")
	}
	if !strings.Contains(out, `name="_csrf" value="tok"`) {
		t.Error("csrf token missing from delete form")
	}
}

func TestEditorKeepsValuesAndErrors(t *testing.T) {
	form := inkpost.PostForm{Title: "Kept Title", Body: "<p>draft</p>"}
	errs := inkpost.FieldErrors{"img_url": "Image URL is required"}
	out := render(t, Editor(cfg, form, errs, false, 0, "tok"))

	if !strings.Contains(out, `value="Kept Title"`) {
		t.Error("entered title should survive re-render")
	}
	if !strings.Contains(out, "Image URL is required") {
		t.Error("field error missing")
	}
	if !strings.Contains(out, `action="/new_post"`) {
		t.Error("create form should post to /new_post")
	}
	// Textarea content is escaped; the widget reads it back as text.
	if !strings.Contains(out, "&lt;p&gt;draft&lt;/p&gt;") {
		t.Error("body draft missing from textarea")
	}
}

func TestEditorEditMode(t *testing.T) {
	out := render(t, Editor(cfg, inkpost.PostForm{}, nil, true, 12, "tok"))
	if !strings.Contains(out, `action="/edit_post/12"`) {
		t.Error("edit form should post to /edit_post/12")
	}
	if !strings.Contains(out, "Edit Post") {
		t.Error("edit heading missing")
	}
}

func TestErrorPages(t *testing.T) {
	if out := render(t, NotFound(cfg)); !strings.Contains(out, "Post Not Found") {
		t.Error("404 page missing heading")
	}
	if out := render(t, ServerError(cfg)); !strings.Contains(out, "Something Went Wrong") {
		t.Error("500 page missing heading")
	}
}
