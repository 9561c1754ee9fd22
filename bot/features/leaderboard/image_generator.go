package leaderboard

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"

	"casinobot/domain/entities"
	"casinobot/domain/utils"
)

// TableColumn defines a column in the leaderboard table
type TableColumn struct {
	Header    string
	XPosition int
	ColorRGB  [3]float64
}

// TableRow represents a single row of data
type TableRow struct {
	Rank   int
	IsTop3 bool
	Data   []string
}

// TableStyle defines the visual style of the table
type TableStyle struct {
	Width           int
	MinHeight       int
	Padding         int
	RowHeight       int
	HighlightColors [3][4]float64 // gold, silver, bronze
}

// ImageGenerator renders the leaderboard as a PNG
type ImageGenerator struct {
	style TableStyle
}

// NewImageGenerator creates a new image generator with default style
func NewImageGenerator() *ImageGenerator {
	return &ImageGenerator{
		style: TableStyle{
			Width:     320,
			MinHeight: 120,
			Padding:   15,
			RowHeight: 26,
			HighlightColors: [3][4]float64{
				{1, 0.84, 0, 0.1},
				{0.8, 0.8, 0.8, 0.08},
				{0.8, 0.5, 0.2, 0.06},
			},
		},
	}
}

// Generate renders the ranked balances
func (g *ImageGenerator) Generate(entries []*entities.LeaderboardEntry) ([]byte, error) {
	columns := []TableColumn{
		{Header: "#", XPosition: g.style.Padding, ColorRGB: [3]float64{0.85, 0.85, 0.9}},
		{Header: "Player", XPosition: g.style.Padding + 30, ColorRGB: [3]float64{1.0, 1.0, 1.0}},
		{Header: "Balance", XPosition: g.style.Padding + 210, ColorRGB: [3]float64{1.0, 0.9, 0.55}},
	}

	rows := make([]TableRow, len(entries))
	for i, entry := range entries {
		rows[i] = TableRow{
			Rank:   entry.Rank,
			IsTop3: i < 3,
			Data: []string{
				fmt.Sprintf("%d", entry.Rank),
				truncateName(entry.Username),
				utils.FormatShortNotation(entry.Balance),
			},
		}
	}

	return g.generateTable(columns, rows)
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) > 18 {
		return string(runes[:17]) + "…"
	}
	return name
}

// generateTable creates the actual image
func (g *ImageGenerator) generateTable(columns []TableColumn, rows []TableRow) ([]byte, error) {
	start := time.Now()
	defer func() {
		log.WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("row_count", len(rows)).
			Debug("Leaderboard image generation completed")
	}()

	// Header (25px) + header padding (30px) + rows + bottom padding (15px)
	height := 25 + 30 + (len(rows) * g.style.RowHeight) + 15
	if height < g.style.MinHeight {
		height = g.style.MinHeight
	}

	dc := gg.NewContext(g.style.Width, height)
	dc.SetFillRule(gg.FillRuleWinding)

	// Felt green gradient
	for i := 0; i < height; i++ {
		t := float64(i) / float64(height)
		dc.SetRGB(0.02+t*0.02, 0.18+t*0.08, 0.08+t*0.04)
		dc.DrawLine(0, float64(i), float64(g.style.Width), float64(i))
		dc.Stroke()
	}

	face, err := loadFont(gomono.TTF, 11)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	rankFace, err := loadFont(gobold.TTF, 9)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	dc.SetFontFace(face)

	y := float64(25)

	dc.SetRGBA(0.3, 0.3, 0.4, 0.4)
	dc.DrawRectangle(0, y-15, float64(g.style.Width), 20)
	dc.Fill()

	dc.SetRGB(1.0, 1.0, 1.0)
	for _, col := range columns {
		drawSharpText(dc, col.Header, float64(col.XPosition), y)
	}

	dc.SetRGBA(0.6, 0.6, 0.7, 0.7)
	dc.SetLineWidth(1)
	dc.DrawLine(0, y+8, float64(g.style.Width), y+8)
	dc.Stroke()

	y += 30
	for i, row := range rows {
		if row.IsTop3 {
			color := g.style.HighlightColors[i]
			dc.SetRGBA(color[0], color[1], color[2], color[3])
		} else {
			dc.SetRGBA(0.5, 0.5, 0.6, 0.02)
		}
		dc.DrawRectangle(0, y-15, float64(g.style.Width), float64(g.style.RowHeight))
		dc.Fill()

		if row.IsTop3 {
			// Medal with the rank inside
			var red, green, blue float64
			switch i {
			case 0:
				red, green, blue = 1, 0.84, 0
			case 1:
				red, green, blue = 0.75, 0.75, 0.75
			case 2:
				red, green, blue = 0.8, 0.5, 0.2
			}
			dc.SetRGB(red, green, blue)
			dc.DrawCircle(float64(g.style.Padding+3), y-4, 5)
			dc.Fill()

			dc.SetRGB(0, 0, 0)
			dc.SetFontFace(rankFace)
			dc.DrawStringAnchored(fmt.Sprintf("%d", row.Rank), float64(g.style.Padding+3), y-5, 0.5, 0.4)
			dc.SetFontFace(face)
		} else {
			dc.SetRGB(columns[0].ColorRGB[0], columns[0].ColorRGB[1], columns[0].ColorRGB[2])
			drawSharpText(dc, row.Data[0], float64(columns[0].XPosition), y)
		}

		for j := 1; j < len(columns) && j < len(row.Data); j++ {
			col := columns[j]
			if i == 0 && col.Header == "Balance" {
				drawCoinIcon(dc, float64(col.XPosition-18), y-8)
			}
			dc.SetRGB(col.ColorRGB[0], col.ColorRGB[1], col.ColorRGB[2])
			drawSharpText(dc, row.Data[j], float64(col.XPosition), y)
		}

		y += float64(g.style.RowHeight)
	}

	if len(rows) == 0 {
		dc.SetRGB(0.7, 0.7, 0.7)
		text := "No players yet"
		w, _ := dc.MeasureString(text)
		drawSharpText(dc, text, (float64(g.style.Width)-w)/2, y)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	return buf.Bytes(), nil
}

// drawCoinIcon draws a stacked gold coin next to the richest balance
func drawCoinIcon(dc *gg.Context, x, y float64) {
	radius := 6.0

	// Edge of the coin below
	dc.SetRGB(0.7, 0.5, 0)
	dc.DrawEllipse(x+radius, y+radius+2, radius, radius*0.6)
	dc.Fill()

	dc.SetRGB(1, 0.84, 0)
	dc.DrawEllipse(x+radius, y+radius, radius, radius*0.6)
	dc.Fill()

	dc.SetRGB(0.85, 0.65, 0.1)
	dc.SetLineWidth(0.8)
	dc.DrawEllipse(x+radius, y+radius, radius*0.6, radius*0.35)
	dc.Stroke()
}

// drawSharpText draws text over a faint shadow
func drawSharpText(dc *gg.Context, text string, x, y float64) {
	dc.Push()
	dc.SetRGBA(0, 0, 0, 0.5)
	dc.DrawString(text, x+0.5, y+0.5)
	dc.Pop()

	dc.DrawString(text, x, y)
}

// loadFont loads a font from byte data
func loadFont(fontData []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:       size,
		DPI:        72,
		Hinting:    font.HintingFull,
		SubPixelsX: 4,
		SubPixelsY: 4,
	})
	return face, nil
}
