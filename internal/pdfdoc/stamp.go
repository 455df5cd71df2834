// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Horizontal is the page edge text is placed against.
type Horizontal string

const (
	Left  Horizontal = "left"
	Right Horizontal = "right"
)

// ParseHorizontal reads a horizontal choice case-insensitively. Anything
// other than "left" means right.
func ParseHorizontal(s string) Horizontal {
	if strings.EqualFold(strings.TrimSpace(s), string(Left)) {
		return Left
	}
	return Right
}

// Vertical is the vertical band text is placed in.
type Vertical string

const (
	Top    Vertical = "top"
	Middle Vertical = "middle"
	Bottom Vertical = "bottom"
)

// ParseVertical reads a vertical choice case-insensitively. Unrecognised
// input means middle.
func ParseVertical(s string) Vertical {
	switch v := Vertical(strings.ToLower(strings.TrimSpace(s))); v {
	case Top, Bottom:
		return v
	default:
		return Middle
	}
}

// Stamp is text to place on one page.
type Stamp struct {
	Text       string
	Page       int
	Horizontal Horizontal
	Vertical   Vertical
}

// Placement is a pdfcpu anchor plus an offset from it, in points.
type Placement struct {
	Anchor string
	DX, DY float64
	Align  string
}

// PlacementFor returns where a stamp lands: offset points in from the
// chosen horizontal edge and, for top and bottom, from that vertical edge.
// Right placement anchors the text's right edge, so it is right aligned
// without measuring glyph widths.
func PlacementFor(h Horizontal, v Vertical, offset float64) Placement {
	p := Placement{Align: "l"}
	col := "l"
	p.DX = offset
	if h == Right {
		col = "r"
		p.DX = -offset
		p.Align = "r"
	}
	switch v {
	case Top:
		p.Anchor = "t" + col
		p.DY = -offset
	case Bottom:
		p.Anchor = "b" + col
		p.DY = offset
	default:
		p.Anchor = col
	}
	return p
}

// description renders a pdfcpu text stamp description for the placement.
func (e *Editor) description(p Placement) string {
	return fmt.Sprintf(
		"fontname:%s, points:%g, position:%s, offset:%g %g, scalefactor:1 abs, rotation:0, fillcolor:#000000, opacity:1, aligntext:%s",
		e.cfg.FontName, e.cfg.FontSize, p.Anchor, p.DX, p.DY, p.Align,
	)
}

// AddText stamps s.Text onto page s.Page of input and writes the result to
// output. The page must exist in input.
func (e *Editor) AddText(ctx context.Context, input, output string, s Stamp) error {
	if strings.TrimSpace(s.Text) == "" {
		return ErrNoText
	}
	data, err := readPDF(input)
	if err != nil {
		return err
	}
	n, err := pageCount(data)
	if err != nil {
		return err
	}
	if err := checkPage(s.Page, n); err != nil {
		return err
	}
	if err := canceled(ctx); err != nil {
		return err
	}

	p := PlacementFor(ParseHorizontal(string(s.Horizontal)), ParseVertical(string(s.Vertical)), e.cfg.EdgeOffset)
	out, err := e.stamp(data, s.Page, s.Text, p)
	if err != nil {
		return err
	}
	if err := writeAtomic(output, out); err != nil {
		return err
	}

	e.log.Info().Int("page", s.Page).Str("anchor", p.Anchor).Str("output", output).Msg("added text")
	return nil
}

// stamp applies one text stamp to page of an in-memory document.
func (e *Editor) stamp(data []byte, page int, text string, p Placement) ([]byte, error) {
	wm, err := api.TextWatermark(text, e.description(p), true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("preparing text stamp: %w", err)
	}
	return applyWatermark(data, page, wm)
}

func applyWatermark(data []byte, page int, wm *model.Watermark) ([]byte, error) {
	var buf bytes.Buffer
	pages := []string{fmt.Sprint(page)}
	if err := api.AddWatermarks(bytes.NewReader(data), &buf, pages, wm, newConfiguration()); err != nil {
		return nil, fmt.Errorf("stamping page %d: %w", page, err)
	}
	return buf.Bytes(), nil
}
