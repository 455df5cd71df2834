// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/deskkit/pkg/types"
)

// glyphWidth approximates a glyph's advance, as a fraction of the font
// size, for fonts without a width table.
const glyphWidth = 0.5

// Grouping thresholds, as fractions of the font size.
const (
	baselineSlack = 0.2 // glyphs whose baselines differ by less share a line
	wordSpace     = 0.25
	maxGap        = 3.0 // a wider horizontal gap starts a new block
	lineSpacing   = 2.0 // the next line of a block sits at most this far down
	indentSlack   = 2.0
)

// glyph is one decoded character in page space. y is its baseline.
type glyph struct {
	x, y, w, size float64
	s             string
}

func isSpace(s string) bool { return strings.TrimSpace(s) == "" }

// blockBuilder accumulates the glyphs of one block.
type blockBuilder struct {
	page   int
	origin types.Point
	size   float64
	box    types.Rect
	text   strings.Builder
	spaced bool

	lineX, lineY, lineW float64
	last                glyph
}

func newBlock(page int, g glyph) *blockBuilder {
	b := &blockBuilder{
		page:   page,
		origin: types.Point{X: g.x, Y: g.y},
		size:   g.size,
		box:    types.Rect{X0: g.x, Y0: g.y, X1: g.x, Y1: g.y + g.size},
		lineX:  g.x,
		lineY:  g.y,
	}
	b.add(g, false)
	return b
}

func tolerance(size float64) float64 { return math.Max(size, 1) }

// sameLine reports whether g continues the current line.
func (b *blockBuilder) sameLine(g glyph) bool {
	tol := tolerance(b.last.size)
	if math.Abs(g.y-b.last.y) > baselineSlack*tol {
		return false
	}
	gap := g.x - (b.last.x + b.last.w)
	return gap >= -tol && gap <= maxGap*tol
}

// nextLine reports whether g starts a line directly below the current one
// at about the same indent and size.
func (b *blockBuilder) nextLine(g glyph) bool {
	tol := tolerance(b.size)
	drop := b.lineY - g.y
	return drop > baselineSlack*tol &&
		drop <= lineSpacing*tol &&
		math.Abs(g.x-b.lineX) <= indentSlack*tol &&
		math.Abs(g.size-b.size) < 0.5
}

func (b *blockBuilder) space() {
	if b.text.Len() > 0 && !b.spaced {
		b.text.WriteByte(' ')
		b.spaced = true
	}
}

func (b *blockBuilder) add(g glyph, newLine bool) {
	switch {
	case newLine:
		b.space()
		b.lineX, b.lineY, b.lineW = g.x, g.y, 0
	case g.x-(b.last.x+b.last.w) > wordSpace*tolerance(g.size):
		b.space()
	}
	if isSpace(g.s) {
		b.space()
	} else {
		b.text.WriteString(g.s)
		b.spaced = false
	}

	w := g.w
	if w <= 0 {
		w = glyphWidth * g.size * float64(utf8.RuneCountInString(g.s))
	}
	b.lineW += w
	b.box.X0 = math.Min(b.box.X0, g.x)
	b.box.Y0 = math.Min(b.box.Y0, g.y)
	b.box.X1 = math.Max(b.box.X1, math.Max(g.x+w, b.lineX+b.lineW))
	b.box.Y1 = math.Max(b.box.Y1, g.y+g.size)
	b.last = g
}

func (b *blockBuilder) finish(blocks []types.TextBlock) []types.TextBlock {
	text := strings.TrimSpace(b.text.String())
	if text == "" {
		return blocks
	}
	return append(blocks, types.TextBlock{
		Page:     b.page,
		Text:     text,
		Origin:   b.origin,
		BBox:     b.box,
		FontSize: b.size,
	})
}

// groupBlocks joins glyphs, in drawing order, into blocks. A glyph on the
// current baseline near the previous one continues the line; a line just
// below, at the same indent and size, continues the block. Lines are
// joined by single spaces. Whitespace never starts a block.
func groupBlocks(page int, glyphs []glyph) []types.TextBlock {
	var (
		blocks []types.TextBlock
		b      *blockBuilder
	)
	for _, g := range glyphs {
		if b != nil {
			switch {
			case b.sameLine(g):
				b.add(g, false)
				continue
			case b.nextLine(g):
				b.add(g, true)
				continue
			}
			blocks = b.finish(blocks)
			b = nil
		}
		if !isSpace(g.s) {
			b = newBlock(page, g)
		}
	}
	if b != nil {
		blocks = b.finish(blocks)
	}
	return blocks
}

// pageBlocks returns the page's own text blocks followed by the blocks of
// each form XObject it draws.
func pageBlocks(p pdf.Page, page int) (blocks []types.TextBlock, err error) {
	if p.V.Kind() == pdf.Null {
		return nil, nil
	}
	// The reader panics on malformed content.
	defer func() {
		if r := recover(); r != nil {
			blocks, err = nil, fmt.Errorf("reading content of page %d: %v", page, r)
		}
	}()

	content := p.Content()
	glyphs := make([]glyph, len(content.Text))
	for i, t := range content.Text {
		glyphs[i] = glyph{x: t.X, y: t.Y, w: t.W, size: t.FontSize, s: t.S}
	}
	blocks = groupBlocks(page, glyphs)

	var forms formReader
	forms.read(contentStreams(p.V.Key("Contents")), p.Resources(), identity, 0)
	for _, g := range forms.forms {
		blocks = append(blocks, groupBlocks(page, g)...)
	}
	return blocks, nil
}

// ExtractBlocks returns the text blocks of every page of input in page
// order. Pages without text contribute nothing.
func (e *Editor) ExtractBlocks(ctx context.Context, input string) ([]types.TextBlock, error) {
	data, err := readPDF(input)
	if err != nil {
		return nil, err
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", input, err)
	}
	n := r.NumPage()

	var blocks []types.TextBlock
	for page := 1; page <= n; page++ {
		if err := canceled(ctx); err != nil {
			return nil, err
		}
		pb, err := pageBlocks(r.Page(page), page)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, pb...)
	}

	e.log.Debug().Int("pages", n).Int("blocks", len(blocks)).Str("input", input).Msg("extracted text blocks")
	return blocks, nil
}
