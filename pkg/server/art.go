package server

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gen2brain/webp"
	"github.com/labstack/echo/v4"

	"wanderbook/pkg/images"
	"wanderbook/pkg/utils"
)

type artReq struct {
	Style        string `json:"style,omitempty"`
	AspectRatio  string `json:"aspectRatio,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Force        bool   `json:"force,omitempty"`
}

// artRequest is the resolved work order keyed under the flight cache.
type artRequest struct {
	Prompt       string
	Style        images.Style
	AspectRatio  string
	Reference    string
	Instructions string
	Force        bool
}

func (a artRequest) sameParams(b artRequest) bool {
	return a.Style == b.Style &&
		a.AspectRatio == b.AspectRatio &&
		a.Instructions == b.Instructions
}

// POST /api/books/:id/pages/:page/art
//
// Invoked independently per page, on demand. A failure leaves the page in
// its not-yet-generated state; nothing else in the book is touched.
func (s *Server) handlePostPageArt(c echo.Context) error {
	id := c.Param("id")
	bk, ok := s.Books.Load(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown book")
	}

	pageNum, err := strconv.Atoi(c.Param("page"))
	if err != nil || pageNum < 1 || pageNum > len(bk.Pages) {
		return echo.NewHTTPError(http.StatusNotFound, "page out of range")
	}
	page := bk.Pages[pageNum-1]

	var req artReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	style := images.Style(req.Style)
	if req.Style == "" {
		style = images.StyleColoringPage
	}
	if !style.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown style")
	}

	key := fmt.Sprintf("%s-%02d.webp", utils.SanitizeFilename(id), pageNum)
	work := artRequest{
		Prompt:       page.Title + ". " + page.ImagePrompt,
		Style:        style,
		AspectRatio:  req.AspectRatio,
		Reference:    bk.Meta.StyleReferenceImage,
		Instructions: req.Instructions,
		Force:        req.Force,
	}
	// Cached art for the key was rendered with the previous request's
	// parameters. Changing style, aspect, or instructions regenerates.
	if prev, ok := s.artParams.Load(key); ok && !prev.sameParams(work) {
		work.Force = true
	}
	s.artParams.Store(key, work)

	var data []byte
	if work.Force {
		data, err = s.artFlight.Force(key)
	} else {
		data, err = s.artFlight.Get(key)
	}
	if err != nil {
		log.Error("page art failed", "book", id, "page", pageNum, "error", err)
		return c.JSON(http.StatusBadGateway, utils.ErrJSON("Art generation failed. The page is untouched; try again."))
	}

	return c.Blob(http.StatusOK, "image/webp", data)
}

func (s *Server) generateAndCacheArt(key string) ([]byte, error) {
	req, ok := s.artParams.Load(key)
	if !ok {
		return nil, fmt.Errorf("no art request recorded for %s", key)
	}

	path := filepath.Join(s.ArtDir, key)
	if !req.Force {
		if data, err := os.ReadFile(path); err == nil {
			log.Infof("Cache hit for page art: %s", key)
			return data, nil
		}
	}

	respCh, errCh, err := s.Queue.Add(images.Request{
		Prompt:         req.Prompt,
		Style:          req.Style,
		AspectRatio:    req.AspectRatio,
		ReferenceImage: req.Reference,
		Instructions:   req.Instructions,
	})
	if err != nil {
		return nil, fmt.Errorf("queue add failed: %w", err)
	}

	select {
	case <-s.Ctx.Done():
		return nil, s.Ctx.Err()
	case err := <-errCh:
		return nil, fmt.Errorf("generation failed: %w", err)
	case raw := <-respCh:
		if len(raw) == 0 {
			return nil, images.ErrNoImage
		}
		data, err := s.saveWebP(raw, key)
		if err != nil {
			return nil, fmt.Errorf("failed to save webp: %w", err)
		}
		return data, nil
	}
}

// saveWebP converts model PNG output to WebP and writes it under ArtDir.
func (s *Server) saveWebP(raw []byte, filename string) ([]byte, error) {
	if err := os.MkdirAll(s.ArtDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create art dir: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		var err2 error
		img, _, err2 = image.Decode(bytes.NewReader(raw))
		if err2 != nil {
			return nil, fmt.Errorf("failed to decode image (png: %v, generic: %v)", err, err2)
		}
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, webp.Options{Lossless: false, Quality: 100}); err != nil {
		return nil, fmt.Errorf("failed to encode webp: %w", err)
	}

	fullPath := filepath.Join(s.ArtDir, filename)
	if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("failed to write file %s: %w", fullPath, err)
	}

	return buf.Bytes(), nil
}
