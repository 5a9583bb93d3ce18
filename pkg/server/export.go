package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"wanderbook/pkg/export"
	"wanderbook/pkg/utils"
)

// GET /api/books/:id/export.pdf
func (s *Server) handleGetExport(c echo.Context) error {
	id := c.Param("id")
	bk, ok := s.Books.Load(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown book")
	}

	pages := make([]export.Page, 0, len(bk.Pages))
	for _, p := range bk.Pages {
		page := export.Page{BookPage: p}
		key := fmt.Sprintf("%s-%02d.webp", utils.SanitizeFilename(id), p.PageNumber)
		if data, err := os.ReadFile(filepath.Join(s.ArtDir, key)); err == nil {
			page.Art = data
		}
		pages = append(pages, page)
	}

	title := "Young Explorers Guide - " + bk.Meta.Destination()
	data, err := export.PDF(title, pages)
	if err != nil {
		log.Error("pdf export failed", "book", id, "error", err)
		return c.JSON(http.StatusInternalServerError,
			utils.ErrJSON("PDF export failed. Use your browser's print dialog instead."))
	}

	filename := fmt.Sprintf("Young-Explorers-Guide-%s.pdf", utils.SanitizeFilename(bk.Meta.DestinationCountry))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/pdf", data)
}
