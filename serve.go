package blog

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Serve runs a local preview server over the build output directory. It is
// authoring tooling only; the deployed artifact is the static output dir,
// served by whatever host the site lives on.
func Serve(cfg SiteConfig) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  cfg.OutDir,
		Index: "index.html",
		HTML5: false,
	}))

	if err := e.Start(cfg.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
