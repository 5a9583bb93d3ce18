package export

import (
	"bytes"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

var placeholderOnce = sync.OnceValues(renderPlaceholder)

// placeholderPNG is the dashed "DRAW HERE" box printed on pages whose art
// was never generated, so the child still gets a drawing surface.
func placeholderPNG() ([]byte, error) {
	return placeholderOnce()
}

func renderPlaceholder() ([]byte, error) {
	dc := gg.NewContext(600, 800)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB255(203, 213, 225)
	dc.SetLineWidth(8)
	dc.SetDash(22, 14)
	dc.DrawRectangle(14, 14, 572, 772)
	dc.Stroke()
	dc.SetDash()

	dc.SetFontFace(basicfont.Face7x13)
	dc.Push()
	dc.RotateAbout(gg.Radians(-12), 300, 400)
	dc.ScaleAbout(6, 6, 300, 400)
	dc.DrawStringAnchored("DRAW HERE", 300, 400, 0.5, 0.5)
	dc.Pop()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
