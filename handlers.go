package inkpost

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Store.ListPosts()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(posts, takeFlash(c)))
}

func (a *App) handleShowPost(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	post, err := a.Store.GetPost(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	return Render(c, a.Views.Post(post, CsrfToken(c)))
}

func (a *App) handleNewPostForm(c echo.Context) error {
	return Render(c, a.Views.Editor(PostForm{}, nil, false, 0, CsrfToken(c)))
}

func (a *App) handleCreatePost(c echo.Context) error {
	form := FormFromContext(c)
	if errs := form.Validate(); len(errs) > 0 {
		return Render(c, a.Views.Editor(form, errs, false, 0, CsrfToken(c)))
	}
	post := form.Post()
	post.Date = time.Now().Format(DateLayout)
	if _, err := a.Store.InsertPost(post); err != nil {
		if errors.Is(err, ErrDuplicateTitle) {
			errs := FieldErrors{"title": "A post with this title already exists"}
			return Render(c, a.Views.Editor(form, errs, false, 0, CsrfToken(c)))
		}
		return err
	}
	if err := setFlash(c, "Post published."); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleEditPostForm(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	post, err := a.Store.GetPost(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	return Render(c, a.Views.Editor(FormFromPost(post), nil, true, post.ID, CsrfToken(c)))
}

func (a *App) handleUpdatePost(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	form := FormFromContext(c)
	if errs := form.Validate(); len(errs) > 0 {
		return Render(c, a.Views.Editor(form, errs, true, id, CsrfToken(c)))
	}
	post := form.Post()
	post.ID = id
	// UpdatePost leaves the date column untouched, so the creation date
	// survives every edit.
	if err := a.Store.UpdatePost(post); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		case errors.Is(err, ErrDuplicateTitle):
			errs := FieldErrors{"title": "A post with this title already exists"}
			return Render(c, a.Views.Editor(form, errs, true, id, CsrfToken(c)))
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/show_post/%d", id))
}

func (a *App) handleDeletePost(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	// Deleting an id that is already gone is a no-op; the redirect still
	// happens so a double-submitted form lands back on the list page.
	if err := a.Store.DeletePost(id); err != nil {
		return err
	}
	if err := setFlash(c, "Post deleted."); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About())
}

func (a *App) handleContact(c echo.Context) error {
	return Render(c, a.Views.Contact())
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt from the configured site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func postID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
