package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-anchor/anchor/pkg/geometry"
	"github.com/go-anchor/anchor/pkg/overlay"
	"github.com/go-anchor/anchor/pkg/placement"
)

// Card metrics for the basicfont face.
const (
	cardPadding = 8.0
	lineHeight  = 13.0
	charWidth   = 7.0
	titleGap    = 4.0
	arrowSize   = 6
)

// EstimateSize measures the card a Config renders to, using the fixed
// 7x13 face. Width is capped at Config.MaxWidth; the body wraps.
func EstimateSize(cfg overlay.Config) geometry.Size {
	maxWidth := cfg.MaxWidth
	if maxWidth <= 0 {
		maxWidth = overlay.DefaultMaxWidth
	}
	maxCols := int((maxWidth - 2*cardPadding) / charWidth)
	if maxCols < 1 {
		maxCols = 1
	}

	lines := wrapText(cfg.Content, maxCols)
	cols := len(cfg.Title)
	for _, line := range lines {
		if len(line) > cols {
			cols = len(line)
		}
	}
	if cols == 0 {
		return geometry.Size{}
	}
	if cols > maxCols {
		cols = maxCols
	}

	height := 2 * cardPadding
	if cfg.Title != "" {
		height += lineHeight
		if len(lines) > 0 {
			height += titleGap
		}
	}
	height += float64(len(lines)) * lineHeight

	return geometry.Size{
		Width:  2*cardPadding + float64(cols)*charWidth,
		Height: height,
	}
}

// wrapText greedily wraps text into lines of at most cols characters.
func wrapText(text string, cols int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if len(line)+1+len(word) <= cols {
				line += " " + word
				continue
			}
			lines = append(lines, line)
			line = word
		}
		lines = append(lines, line)
	}
	return lines
}

// kindColors maps overlay kinds to their border/arrow accent.
var kindColors = map[overlay.Kind]color.RGBA{
	overlay.KindNeutral: {R: 0x60, G: 0x60, B: 0x60, A: 0xFF},
	overlay.KindInfo:    {R: 0x2B, G: 0x6C, B: 0xB0, A: 0xFF},
	overlay.KindSuccess: {R: 0x2E, G: 0x7D, B: 0x32, A: 0xFF},
	overlay.KindWarning: {R: 0xB8, G: 0x86, B: 0x0B, A: 0xFF},
	overlay.KindError:   {R: 0xB0, G: 0x2B, B: 0x2B, A: 0xFF},
}

var (
	cardBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	cardText       = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
)

// Painter rasterizes a Layer into an RGBA image. It draws each entry's
// card (background, kind-colored border, title and wrapped body) plus a
// directional arrow pointing back toward the trigger, oriented by the
// entry's resolved side.
type Painter struct {
	// Background fills the viewport before entries are drawn. A zero
	// alpha leaves the image transparent.
	Background color.RGBA
}

// Render draws every entry in z-order onto a fresh image of the
// viewport's size.
func (p *Painter) Render(viewport geometry.Size, layer *Layer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(viewport.Width), int(viewport.Height)))
	if p.Background.A != 0 {
		draw.Draw(img, img.Bounds(), &image.Uniform{C: p.Background}, image.Point{}, draw.Src)
	}
	for _, entry := range layer.Entries() {
		if !entry.Placement.Ready {
			continue
		}
		p.drawEntry(img, entry)
	}
	return img
}

func (p *Painter) drawEntry(img *image.RGBA, entry *Entry) {
	rect := entry.Rect()
	bounds := image.Rect(int(rect.Left), int(rect.Top), int(rect.Right), int(rect.Bottom))
	accent := kindColors[entry.Config.Kind]

	draw.Draw(img, bounds, &image.Uniform{C: cardBackground}, image.Point{}, draw.Src)
	drawBorder(img, bounds, accent)
	drawArrow(img, bounds, entry.Placement.Side, accent)

	x := bounds.Min.X + int(cardPadding)
	y := bounds.Min.Y + int(cardPadding) + 11 // face ascent
	if entry.Config.Title != "" {
		drawLine(img, x, y, entry.Config.Title, accent)
		y += int(lineHeight + titleGap)
	}
	maxCols := (bounds.Dx() - 2*int(cardPadding)) / int(charWidth)
	for _, line := range wrapText(entry.Config.Content, maxCols) {
		drawLine(img, x, y, line, cardText)
		y += int(lineHeight)
	}
}

func drawBorder(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

// drawArrow paints the directional indicator on the card edge facing
// the trigger. A card placed above its trigger gets an arrow on its
// bottom edge, and so on.
func drawArrow(img *image.RGBA, r image.Rectangle, side placement.Side, c color.RGBA) {
	cx := (r.Min.X + r.Max.X) / 2
	cy := (r.Min.Y + r.Max.Y) / 2
	for i := 0; i < arrowSize; i++ {
		half := arrowSize - i
		switch side {
		case placement.SideTop:
			for x := cx - half; x <= cx+half; x++ {
				img.SetRGBA(x, r.Max.Y+i, c)
			}
		case placement.SideBottom:
			for x := cx - half; x <= cx+half; x++ {
				img.SetRGBA(x, r.Min.Y-1-i, c)
			}
		case placement.SideRight:
			for y := cy - half; y <= cy+half; y++ {
				img.SetRGBA(r.Min.X-1-i, y, c)
			}
		case placement.SideLeft:
			for y := cy - half; y <= cy+half; y++ {
				img.SetRGBA(r.Max.X+i, y, c)
			}
		}
	}
}

func drawLine(img *image.RGBA, x, y int, text string, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: c},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
