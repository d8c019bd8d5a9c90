package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/lmendesdev/lookkg/internal/api/handlers"
	"github.com/lmendesdev/lookkg/internal/apperr"
	"github.com/lmendesdev/lookkg/internal/config"
	"github.com/lmendesdev/lookkg/internal/recommend"
)

type Server struct {
	echo   *echo.Echo
	config *config.Config
}

func NewServer(cfg *config.Config, r *recommend.Recommender) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.HTTPErrorHandler = errorHandler

	s := &Server{echo: e, config: cfg}
	s.setupRoutes(r)
	return s
}

func (s *Server) setupRoutes(r *recommend.Recommender) {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h := handlers.NewHandlers(s.config, r)

	v1 := s.echo.Group("/v1")
	v1.POST("/graph/items", h.CreateItem)
	v1.POST("/items", h.CreateItem)
	v1.POST("/graph/rebuild", h.RebuildGraph)
	v1.GET("/items/catalog", h.ListCatalog)
	v1.GET("/items/:item_id", h.GetItem)
	v1.POST("/items/search", h.SearchItems)
	v1.DELETE("/items/:item_id", h.DeleteItem)
	v1.POST("/recommend/complementar", h.RecommendComplementar)
	v1.POST("/recommend/completar", h.RecommendCompletar)
}

// errorHandler centralizes the apperr → HTTP status mapping instead of
// scattering echo.NewHTTPError calls with stringly-typed bodies.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var validation *apperr.ValidationError
	var notFound *apperr.NotFound
	var cancelled *apperr.Cancelled
	var storeFailure *apperr.StoreFailure
	var internal *apperr.InternalError

	var status int
	var detail string

	switch {
	case errors.As(err, &validation):
		status, detail = http.StatusUnprocessableEntity, validation.Error()
	case errors.As(err, &notFound):
		status, detail = http.StatusNotFound, notFound.Error()
	case errors.As(err, &cancelled):
		status, detail = 499, "cliente cancelou a requisição"
	case errors.As(err, &storeFailure):
		log.Printf("store failure: %v", storeFailure)
		status, detail = http.StatusInternalServerError, "falha de armazenamento"
	case errors.As(err, &internal):
		log.Printf("internal error: %v", internal)
		status, detail = http.StatusInternalServerError, "erro interno"
	default:
		he, ok := err.(*echo.HTTPError)
		if ok {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				detail = m
			} else {
				detail = http.StatusText(status)
			}
		} else {
			log.Printf("unhandled error: %v", err)
			status, detail = http.StatusInternalServerError, "erro interno"
		}
	}

	if jsonErr := c.JSON(status, map[string]string{"detail": detail}); jsonErr != nil {
		log.Printf("error writing error response: %v", jsonErr)
	}
}

func (s *Server) Start(ctx context.Context) error {
	addr := ":" + s.config.Server.Port
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
