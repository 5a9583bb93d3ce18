package server

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"wanderbook/pkg/book"
	"wanderbook/pkg/flight"
	"wanderbook/pkg/queue"
	"wanderbook/pkg/utils"
)

// Generator is the book-generation collaborator the server fronts.
type Generator interface {
	Generate(ctx context.Context, input book.ActivityInput) (*book.ActivityBookResponse, error)
}

type Server struct {
	Echo      *echo.Echo
	Generator Generator
	Queue     queue.Queue
	Ctx       context.Context

	// ArtDir is where generated page art lives as WebP files.
	ArtDir string

	// Books holds the session-scoped generated books by id. There is no
	// durable persistence; a reset discards the book wholesale.
	Books *utils.SyncMap[map[string]*book.ActivityBookResponse, string, *book.ActivityBookResponse]

	artParams *utils.SyncMap[map[string]artRequest, string, artRequest]
	artFlight *flight.Cache[string, []byte]
}

func NewServer(ctx context.Context, gen Generator, q queue.Queue) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	s := &Server{
		Echo:      e,
		Generator: gen,
		Queue:     q,
		Ctx:       ctx,
		ArtDir:    "images/pages",
		Books:     utils.NewSyncMap[map[string]*book.ActivityBookResponse](),
		artParams: utils.NewSyncMap[map[string]artRequest](),
	}
	s.artFlight = flight.New(time.Hour, s.generateAndCacheArt)

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)

	api := s.Echo.Group("/api")
	api.POST("/books", s.handlePostBook)
	api.GET("/books/:id", s.handleGetBook)
	api.DELETE("/books/:id", s.handleDeleteBook)
	api.POST("/books/:id/pages/:page/art", s.handlePostPageArt)
	api.GET("/books/:id/export.pdf", s.handleGetExport)
}

func (s *Server) Start(addr string) error {
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
