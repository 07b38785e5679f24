package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"

	"github.com/inkpost/inkpost"
)

// Home renders the post list. flash, when non-empty, is a one-shot notice
// from a completed create or delete.
func Home(cfg inkpost.SiteConfig, posts []inkpost.BlogPost, flash string) templ.Component {
	return page(cfg, "Home", func(b *bytes.Buffer) {
		if flash != "" {
			fmt.Fprintf(b, `<p class="flash">%s</p>`, esc(flash))
		}
		fmt.Fprintf(b, `<header class="hero"><h1>%s</h1>`, esc(cfg.Name))
		if cfg.Description != "" {
			fmt.Fprintf(b, `<p class="subtitle">%s</p>`, esc(cfg.Description))
		}
		b.WriteString(`</header>`)
		if len(posts) == 0 {
			b.WriteString(`<p class="empty">No posts yet. <a href="/new_post">Write the first one.</a></p>`)
			return
		}
		b.WriteString(`<section class="posts">`)
		for _, p := range posts {
			b.WriteString(`<article class="post-card">`)
			fmt.Fprintf(b, `<img src="%s" alt="">`, esc(p.ImgURL))
			fmt.Fprintf(b, `<h2><a href="/show_post/%d">%s</a></h2>`, p.ID, esc(p.Title))
			fmt.Fprintf(b, `<p class="subtitle">%s</p>`, esc(p.Subtitle))
			fmt.Fprintf(b, `<p class="byline">%s, %s</p>`, esc(p.Author), esc(p.Date))
			b.WriteString(`</article>`)
		}
		b.WriteString(`</section>`)
	})
}

// Post renders a single post. The body is written unescaped: it is rich-text
// markup produced by the editor widget, not free-form user input.
func Post(cfg inkpost.SiteConfig, post inkpost.BlogPost, csrfToken string) templ.Component {
	return page(cfg, post.Title, func(b *bytes.Buffer) {
		b.WriteString(`<article class="post">`)
		fmt.Fprintf(b, `<h1>%s</h1>`, esc(post.Title))
		fmt.Fprintf(b, `<p class="subtitle">%s</p>`, esc(post.Subtitle))
		fmt.Fprintf(b, `<p class="byline">%s, %s</p>`, esc(post.Author), esc(post.Date))
		fmt.Fprintf(b, `<img class="post-image" src="%s" alt="">`, esc(post.ImgURL))
		fmt.Fprintf(b, `<div class="post-body">%s</div>`, post.Body)
		b.WriteString(`</article>`)
		b.WriteString(`<div class="post-actions">`)
		fmt.Fprintf(b, `<a class="button" href="/edit_post/%d">Edit Post</a>`, post.ID)
		fmt.Fprintf(b, `<form method="post" action="/delete/%d" onsubmit="return confirm('Delete this post?')">`, post.ID)
		fmt.Fprintf(b, `<input type="hidden" name="_csrf" value="%s">`, esc(csrfToken))
		b.WriteString(`<button type="submit" class="button danger">Delete Post</button></form>`)
		b.WriteString(`</div>`)
	})
}

// Editor renders the post form for both create and edit. Submitted values
// and per-field errors survive a failed validation round trip.
func Editor(cfg inkpost.SiteConfig, form inkpost.PostForm, errs inkpost.FieldErrors, isEdit bool, postID int64, csrfToken string) templ.Component {
	title := "New Post"
	action := "/new_post"
	if isEdit {
		title = "Edit Post"
		action = fmt.Sprintf("/edit_post/%d", postID)
	}
	return page(cfg, title, func(b *bytes.Buffer) {
		fmt.Fprintf(b, `<h1>%s</h1>`, title)
		if msg, ok := errs["form"]; ok {
			fmt.Fprintf(b, `<p class="error">%s</p>`, esc(msg))
		}
		fmt.Fprintf(b, `<form class="editor" method="post" action="%s">`, action)
		fmt.Fprintf(b, `<input type="hidden" name="_csrf" value="%s">`, esc(csrfToken))
		writeField(b, "title", "Blog Post Title", form.Title, errs)
		writeField(b, "subtitle", "Subtitle", form.Subtitle, errs)
		writeField(b, "author", "Your Name", form.Author, errs)
		writeField(b, "img_url", "Blog Image URL", form.ImgURL, errs)
		writeBodyField(b, form.Body, errs)
		b.WriteString(`<button type="submit" class="button">Submit Post</button>`)
		b.WriteString(`</form>`)
	})
}

func writeField(b *bytes.Buffer, name, label, value string, errs inkpost.FieldErrors) {
	b.WriteString(`<div class="field">`)
	fmt.Fprintf(b, `<label for="%s">%s</label>`, name, esc(label))
	fmt.Fprintf(b, `<input type="text" id="%s" name="%s" value="%s">`, name, name, esc(value))
	if msg, ok := errs[name]; ok {
		fmt.Fprintf(b, `<p class="error">%s</p>`, esc(msg))
	}
	b.WriteString(`</div>`)
}

// writeBodyField emits the textarea the rich-text widget attaches to. The
// current value is escaped here; the widget unescapes it client-side like
// any textarea content.
func writeBodyField(b *bytes.Buffer, value string, errs inkpost.FieldErrors) {
	b.WriteString(`<div class="field">`)
	b.WriteString(`<label for="body">Blog Content</label>`)
	fmt.Fprintf(b, `<textarea id="body" name="body" class="rich-editor" rows="12">%s</textarea>`, esc(value))
	if msg, ok := errs["body"]; ok {
		fmt.Fprintf(b, `<p class="error">%s</p>`, esc(msg))
	}
	b.WriteString(`</div>`)
}

// About renders the static about page.
func About(cfg inkpost.SiteConfig) templ.Component {
	return page(cfg, "About", func(b *bytes.Buffer) {
		b.WriteString(`<h1>About Me</h1>`)
		if cfg.Author != "" {
			fmt.Fprintf(b, `<p>Hi, I'm %s.</p>`, esc(cfg.Author))
		}
		if cfg.Description != "" {
			fmt.Fprintf(b, `<p>%s</p>`, esc(cfg.Description))
		}
	})
}

// Contact renders the static contact page.
func Contact(cfg inkpost.SiteConfig) templ.Component {
	return page(cfg, "Contact", func(b *bytes.Buffer) {
		b.WriteString(`<h1>Contact Me</h1>`)
		b.WriteString(`<p>Have a question about a post? Get in touch.</p>`)
		if cfg.Author != "" {
			fmt.Fprintf(b, `<p>%s</p>`, esc(cfg.Author))
		}
	})
}

// NotFound renders the 404 page.
func NotFound(cfg inkpost.SiteConfig) templ.Component {
	return page(cfg, "Not Found", func(b *bytes.Buffer) {
		b.WriteString(`<h1>Post Not Found</h1>`)
		b.WriteString(`<p>That page doesn't exist. It may have been deleted.</p>`)
		b.WriteString(`<p><a href="/">Back to all posts</a></p>`)
	})
}

// ServerError renders the 500 page.
func ServerError(cfg inkpost.SiteConfig) templ.Component {
	return page(cfg, "Server Error", func(b *bytes.Buffer) {
		b.WriteString(`<h1>Something Went Wrong</h1>`)
		b.WriteString(`<p>The server hit an unexpected error. Try again in a moment.</p>`)
	})
}
