package main

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Caption shown on the generated placeholder when an image fails to load.
const placeholderCaption = "Imagem indisponível"

// Global font source for text rendering
var globalFontSource *text.GoTextFaceSource

// InitGraphics initializes the global font source for text rendering
func InitGraphics() error {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	globalFontSource = s
	return nil
}

// DrawText draws text with specified position and color
func DrawText(screen *ebiten.Image, textString string, font *text.GoTextFace, x, y float64, textColor color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, textString, font, op)
}

// DrawFilledRect draws filled rectangles with float64 coordinates
func DrawFilledRect(screen *ebiten.Image, x, y, w, h float64, bgColor color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bgColor, false)
}

// drawRectOutline strokes a 2px border around a rectangle.
func drawRectOutline(screen *ebiten.Image, rect image.Rectangle, c color.RGBA) {
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 2, c, false)
}

// CreateErrorImage creates a placeholder graphic for a failed image load,
// with the localized caption plus file and reason lines.
func CreateErrorImage(width, height int, filename, errorMsg string) *ebiten.Image {
	if width <= 0 || height <= 0 {
		width, height = 400, 300
	}

	errorImg := ebiten.NewImage(width, height)
	errorImg.Fill(color.RGBA{40, 44, 52, 255})

	white := color.RGBA{255, 255, 255, 255}

	// White border
	DrawFilledRect(errorImg, 0, 0, float64(width), 3, white)
	DrawFilledRect(errorImg, 0, float64(height-3), float64(width), 3, white)
	DrawFilledRect(errorImg, 0, 0, 3, float64(height), white)
	DrawFilledRect(errorImg, float64(width-3), 0, 3, float64(height), white)

	if globalFontSource == nil {
		// No font available; the bordered box alone marks the failure.
		return errorImg
	}

	captionFont := &text.GoTextFace{
		Source: globalFontSource,
		Size:   20.0,
	}

	fileText := "Arquivo: " + filepath.Base(parseRef(filename).Path)
	reasonText := "Motivo: " + errorMsg

	// Truncate long text to fit within image bounds
	maxChars := (width - 20) / 10
	if maxChars > 3 {
		if len(fileText) > maxChars {
			fileText = fileText[:maxChars-3] + "..."
		}
		if len(reasonText) > maxChars {
			reasonText = reasonText[:maxChars-3] + "..."
		}
	}

	DrawText(errorImg, placeholderCaption, captionFont, 10, 30, white)
	DrawText(errorImg, fileText, captionFont, 10, 60, color.RGBA{200, 200, 200, 255})
	DrawText(errorImg, reasonText, captionFont, 10, 90, color.RGBA{200, 200, 200, 255})

	return errorImg
}
