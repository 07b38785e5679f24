package main

import (
	"log"
	"os"
	"strings"

	"github.com/a-h/templ"
	"github.com/joho/godotenv"

	"github.com/inkpost/inkpost"
	"github.com/inkpost/inkpost/views"
)

func main() {
	// A local .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	cfg := inkpost.SiteConfig{
		Name:          inkpost.EnvOr("SITE_NAME", "Blog"),
		URL:           strings.TrimSuffix(inkpost.EnvOr("SITE_URL", "http://localhost:3000"), "/"),
		Description:   os.Getenv("SITE_DESCRIPTION"),
		Author:        os.Getenv("SITE_AUTHOR"),
		Addr:          inkpost.EnvOr("ADDR", ":3000"),
		DatabasePath:  inkpost.EnvOr("DATABASE_PATH", "data/posts.db"),
		SessionSecret: inkpost.MustEnv("SESSION_SECRET"),
		CookieSecure:  strings.EqualFold(os.Getenv("COOKIE_SECURE"), "true"),
	}

	app := inkpost.New(cfg, newViews(cfg),
		inkpost.WithStaticDir(inkpost.EnvOr("STATIC_DIR", "public")),
	)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// newViews binds the site configuration into the view functions the app
// calls for each page.
func newViews(cfg inkpost.SiteConfig) inkpost.ViewFuncs {
	return inkpost.ViewFuncs{
		Home: func(posts []inkpost.BlogPost, flash string) templ.Component {
			return views.Home(cfg, posts, flash)
		},
		Post: func(post inkpost.BlogPost, csrfToken string) templ.Component {
			return views.Post(cfg, post, csrfToken)
		},
		Editor: func(form inkpost.PostForm, errs inkpost.FieldErrors, isEdit bool, postID int64, csrfToken string) templ.Component {
			return views.Editor(cfg, form, errs, isEdit, postID, csrfToken)
		},
		About:       func() templ.Component { return views.About(cfg) },
		Contact:     func() templ.Component { return views.Contact(cfg) },
		NotFound:    func() templ.Component { return views.NotFound(cfg) },
		ServerError: func() templ.Component { return views.ServerError(cfg) },
	}
}
