// Package views contains the server-rendered HTML components for inkpost.
// Components are plain Go functions returning templ.Component, built with
// templ.ComponentFunc writing into a buffer, so no code generation step is
// needed. Everything user-entered is escaped except post bodies, which are
// opaque rich-text markup produced by the editor widget.
package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/inkpost/inkpost"
)

// page wraps a body-writing function in the shared HTML shell.
func page(cfg inkpost.SiteConfig, title string, body func(b *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(&b, `<title>%s | %s</title>`, esc(title), esc(cfg.Name))
		if cfg.Description != "" {
			fmt.Fprintf(&b, `<meta name="description" content="%s">`, esc(cfg.Description))
		}
		b.WriteString(`<link rel="alternate" type="application/rss+xml" href="/feed.xml">`)
		b.WriteString(`<link rel="stylesheet" href="/public/styles.css">`)
		b.WriteString(`</head><body>`)
		writeNav(&b, cfg)
		b.WriteString(`<main class="container">`)
		body(&b)
		b.WriteString(`</main>`)
		writeFooter(&b, cfg)
		b.WriteString(`</body></html>`)
		_, err := w.Write(b.Bytes())
		return err
	})
}

func writeNav(b *bytes.Buffer, cfg inkpost.SiteConfig) {
	b.WriteString(`<nav class="nav"><a class="brand" href="/">`)
	b.WriteString(esc(cfg.Name))
	b.WriteString(`</a><div class="links">`)
	b.WriteString(`<a href="/">Home</a>`)
	b.WriteString(`<a href="/new_post">New Post</a>`)
	b.WriteString(`<a href="/about">About</a>`)
	b.WriteString(`<a href="/contact">Contact</a>`)
	b.WriteString(`</div></nav>`)
}

func writeFooter(b *bytes.Buffer, cfg inkpost.SiteConfig) {
	b.WriteString(`<footer class="footer">`)
	if cfg.Author != "" {
		fmt.Fprintf(b, `<span>%s</span> `, esc(cfg.Author))
	}
	b.WriteString(`<a href="/feed.xml">RSS</a></footer>`)
}

func esc(s string) string {
	return html.EscapeString(s)
}
