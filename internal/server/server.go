package server

import (
	"catalog/internal/handler"
	"catalog/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// New はルーティングとmiddlewareを組んだechoを返す。
func New(
	log zerolog.Logger,
	categoryH *handler.CategoryHandler,
	productH *handler.ProductHandler,
	tagH *handler.TagHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())

	RegisterRoutes(e, categoryH, productH, tagH)
	return e
}

func Start(
	addr string,
	log zerolog.Logger,
	categoryH *handler.CategoryHandler,
	productH *handler.ProductHandler,
	tagH *handler.TagHandler,
) error {
	e := New(log, categoryH, productH, tagH)
	return e.Start(addr)
}
