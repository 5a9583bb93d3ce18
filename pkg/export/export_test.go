package export

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/gen2brain/webp"

	"wanderbook/pkg/book"
)

func sampleBook(t *testing.T) []Page {
	t.Helper()
	input := book.ActivityInput{Age: 7, DestinationCountry: "Japan", DestinationCity: "Kyoto"}
	content := book.DestinationContent{
		Continent:    "Asia",
		CatchyTitle:  "Kyoto Adventures!",
		Introduction: "Welcome to the city of a thousand temples.",
		MascotName:   "Bento",
		MascotType:   "Beagle",
	}
	assembled := book.Assemble(input, content)
	pages := make([]Page, len(assembled))
	for i, p := range assembled {
		pages[i] = Page{BookPage: p}
	}
	return pages
}

func fakeArt(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 30, 40))
	for y := range 40 {
		for x := range 30 {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 6), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, webp.Options{Lossless: false, Quality: 100}); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestPDFFullBookWithoutArt(t *testing.T) {
	out, err := PDF("Kyoto Adventures!", sampleBook(t))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not start with a PDF header: %q", out[:min(8, len(out))])
	}
	if len(out) < 10_000 {
		t.Fatalf("suspiciously small document: %d bytes", len(out))
	}
}

func TestPDFWithGeneratedArt(t *testing.T) {
	pages := sampleBook(t)
	art := fakeArt(t)
	pages[0].Art = art
	pages[4].Art = art

	out, err := PDF("Kyoto Adventures!", pages)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}

func TestPDFCorruptArtFallsBackToPlaceholder(t *testing.T) {
	pages := sampleBook(t)
	pages[0].Art = []byte("definitely not webp")

	out, err := PDF("Kyoto Adventures!", pages)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}

func TestPDFEmpty(t *testing.T) {
	out, err := PDF("Empty", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}

func TestPlaceholderIsValidPNG(t *testing.T) {
	data, err := placeholderPNG()
	if err != nil {
		t.Fatal(err)
	}
	pngMagic := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatalf("placeholder is not a PNG: % x", data[:min(8, len(data))])
	}
}

func TestWebpToPNG(t *testing.T) {
	out, err := webpToPNG(fakeArt(t))
	if err != nil {
		t.Fatal(err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 30 || cfg.Height != 40 {
		t.Fatalf("decoded %dx%d, want 30x40", cfg.Width, cfg.Height)
	}
}
