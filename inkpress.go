// Package inkpress is a static blog article pipeline built with Go, Echo,
// and templ. It loads front-matter article documents into immutable records,
// renders their bodies (directive expansion plus an HTML or markdown
// dialect) into fragments, and aggregates them into a collection that feeds
// the build output, the RSS feed, the sitemap, and a local preview server.
package inkpress

import (
	"github.com/labstack/echo/v4"
)

// App wires the loader, renderer, collection, and preview server together.
type App struct {
	Config     SiteConfig
	Echo       *echo.Echo
	Collection *Collection

	sizer        func(src string) (int, int, bool)
	customRoutes []func(*App)
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:     cfg,
		Echo:       echo.New(),
		Collection: NewCollection(),
	}
	a.sizer = NewImageSizer(cfg.StaticDir).Size

	for _, opt := range opts {
		opt(a)
	}
	return a
}
