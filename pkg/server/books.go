package server

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/segmentio/ksuid"

	"wanderbook/pkg/book"
	"wanderbook/pkg/generator"
	"wanderbook/pkg/utils"
)

type bookEnvelope struct {
	ID string `json:"id"`
	*book.ActivityBookResponse
}

// POST /api/books
func (s *Server) handlePostBook(c echo.Context) error {
	var input book.ActivityInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if err := input.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(err.Error()))
	}

	resp, err := s.Generator.Generate(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, generator.ErrCredential) {
			log.Warn("credential rejected during book generation", "error", err)
			return c.JSON(http.StatusUnauthorized, map[string]any{
				"success": false,
				"code":    "credential",
				"error":   "Your API key was rejected.",
				"hint":    "Select a valid API key and try again.",
			})
		}
		log.Error("book generation failed", "destination", input.Destination(), "error", err)
		return c.JSON(http.StatusBadGateway, utils.ErrJSON("We couldn't create your book. Please try again."))
	}

	id := ksuid.New().String()
	s.Books.Store(id, resp)
	log.Info("book created", "id", id, "destination", input.Destination(), "pages", len(resp.Pages))

	return c.JSON(http.StatusOK, bookEnvelope{ID: id, ActivityBookResponse: resp})
}

// GET /api/books/:id
func (s *Server) handleGetBook(c echo.Context) error {
	id := c.Param("id")
	bk, ok := s.Books.Load(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown book")
	}
	return c.JSON(http.StatusOK, bookEnvelope{ID: id, ActivityBookResponse: bk})
}

// DELETE /api/books/:id discards the book wholesale.
func (s *Server) handleDeleteBook(c echo.Context) error {
	s.Books.Delete(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
