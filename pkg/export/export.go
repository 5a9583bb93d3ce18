// Package export renders an assembled book as a multi-page A4 PDF, one
// physical page per BookPage, preserving page order and boundaries.
package export

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gen2brain/webp"
	"github.com/go-pdf/fpdf"

	"wanderbook/pkg/book"
)

// Page pairs an assembled page with its generated art, if any. Art bytes
// are WebP as stored by the server; nil means the page was never
// illustrated and gets the drawing placeholder instead.
type Page struct {
	book.BookPage
	Art []byte
}

const (
	pageW    = 210.0
	pageH    = 297.0
	inset    = 15.0
	contentW = pageW - 2*inset
	footerY  = 284.0
)

// PDF renders the pages into a single A4 portrait document.
func PDF(title string, pages []Page) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	placeholder, err := placeholderPNG()
	if err != nil {
		return nil, fmt.Errorf("render placeholder: %w", err)
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("placeholder", opts, bytes.NewReader(placeholder))

	for _, p := range pages {
		pdf.AddPage()

		pdf.SetTextColor(79, 70, 229)
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetXY(inset, 14)
		pdf.CellFormat(contentW, 5, tr(p.Section), "", 0, "L", false, 0, "")

		pdf.SetTextColor(15, 23, 42)
		pdf.SetFont("Helvetica", "B", 22)
		pdf.SetXY(inset, 21)
		pdf.MultiCell(contentW, 9, tr(p.Title), "", "L", false)

		y := pdf.GetY() + 3
		if p.Instructions != "" {
			pdf.SetTextColor(71, 85, 105)
			pdf.SetFont("Helvetica", "I", 11)
			pdf.SetXY(inset, y)
			pdf.MultiCell(contentW, 6, tr(p.Instructions), "", "L", false)
			y = pdf.GetY() + 2
		}
		y = writeContent(pdf, tr, p.Content, y)

		drawArt(pdf, p, y)

		pdf.SetTextColor(148, 163, 184)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(0, footerY)
		pdf.CellFormat(pageW-10, 8, fmt.Sprintf("Page %d", p.PageNumber), "", 0, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// writeContent prints the layout-specific payload and returns the next
// free y position.
func writeContent(pdf *fpdf.Fpdf, tr func(string) string, c book.PageContent, y float64) float64 {
	var lines []string
	switch {
	case c.Text != "":
		lines = append(lines, c.Text)
	case len(c.Items) > 0:
		for _, it := range c.Items {
			lines = append(lines, "[  ] "+it)
		}
	case len(c.Phrases) > 0:
		for _, p := range c.Phrases {
			lines = append(lines, fmt.Sprintf("%s  -  %s (%s)", p.English, p.Local, p.Phonetic))
		}
	case len(c.Foods) > 0:
		for _, f := range c.Foods {
			lines = append(lines, f.Name)
		}
	case len(c.Steps) > 0:
		for _, s := range c.Steps {
			lines = append(lines, "- "+s)
		}
	}
	if len(lines) == 0 {
		return y
	}

	pdf.SetTextColor(51, 65, 85)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range lines {
		pdf.SetXY(inset, y)
		pdf.MultiCell(contentW, 5.5, tr(line), "", "L", false)
		y = pdf.GetY() + 1
	}
	return y + 2
}

// drawArt places the page's generated image, or the placeholder, in a 3:4
// box centered between y and the footer.
func drawArt(pdf *fpdf.Fpdf, p Page, y float64) {
	avail := footerY - y - 4
	if avail < 40 {
		return
	}
	h := avail
	if h > 200 {
		h = 200
	}
	w := h * 3 / 4
	if w > contentW {
		w = contentW
		h = w * 4 / 3
	}
	x := (pageW - w) / 2

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	name := "placeholder"
	if len(p.Art) > 0 {
		data, err := webpToPNG(p.Art)
		if err == nil {
			name = fmt.Sprintf("art-%d", p.PageNumber)
			pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
		}
	}
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

func webpToPNG(data []byte) ([]byte, error) {
	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
