// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"math"

	"github.com/ledongthuc/pdf"
)

// maxFormDepth bounds how deeply nested form XObjects are followed.
const maxFormDepth = 8

type matrix [6]float64

var identity = matrix{1, 0, 0, 1, 0, 0}

// mul returns m x n in the row-vector convention PDF uses.
func (m matrix) mul(n matrix) matrix {
	return matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}

func translate(tx, ty float64) matrix {
	return matrix{1, 0, 0, 1, tx, ty}
}

// matrixOf reads six numbers from an operand list or a PDF array.
func matrixOf(v []pdf.Value) (matrix, bool) {
	if len(v) != 6 {
		return identity, false
	}
	var m matrix
	for i := range m {
		m[i] = v[i].Float64()
	}
	return m, true
}

func arrayValues(v pdf.Value) []pdf.Value {
	out := make([]pdf.Value, v.Len())
	for i := range out {
		out[i] = v.Index(i)
	}
	return out
}

// contentStreams returns the streams of a page's Contents entry, which is
// either one stream or an array of them.
func contentStreams(v pdf.Value) []pdf.Value {
	if v.Kind() == pdf.Array {
		return arrayValues(v)
	}
	return []pdf.Value{v}
}

// textState is the graphics and text state a form's content runs with.
// q saves it and Q restores it.
type textState struct {
	ctm       matrix
	font      pdf.Font
	enc       pdf.TextEncoding
	size      float64
	charSpace float64
	wordSpace float64
	scale     float64
	leading   float64
	rise      float64
}

// formReader collects the text drawn by form XObjects. pdf.Page.Content
// stops at the Do operator, so stamped text would otherwise be invisible.
type formReader struct {
	// forms holds one glyph run per form in drawing order.
	forms [][]glyph
}

// read interprets streams with resources res under ctm. Text shown at
// depth 0 belongs to the page itself and is not collected.
func (f *formReader) read(streams []pdf.Value, res pdf.Value, ctm matrix, depth int) []glyph {
	var (
		out     []glyph
		gs      = textState{ctm: ctm, scale: 1}
		saved   []textState
		tm, tlm = identity, identity
	)

	show := func(raw string) {
		if depth == 0 || gs.enc == nil {
			return
		}
		n := 0
		for _, ch := range gs.enc.Decode(raw) {
			trm := matrix{gs.size * gs.scale, 0, 0, gs.size, 0, gs.rise}.mul(tm).mul(gs.ctm)
			w0 := 0.0
			if n < len(raw) {
				w0 = gs.font.Width(int(raw[n])) / 1000
			}
			out = append(out, glyph{
				x:    trm[4],
				y:    trm[5],
				w:    w0 * math.Hypot(trm[0], trm[1]),
				size: math.Hypot(trm[2], trm[3]),
				s:    string(ch),
			})
			tx := w0*gs.size + gs.charSpace
			if ch == ' ' {
				tx += gs.wordSpace
			}
			tm = translate(tx*gs.scale, 0).mul(tm)
			n++
		}
	}
	nextLine := func() {
		tlm = translate(0, -gs.leading).mul(tlm)
		tm = tlm
	}

	do := func(stk *pdf.Stack, op string) {
		args := make([]pdf.Value, stk.Len())
		for i := len(args) - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}
		num := func(i int) float64 {
			if i < len(args) {
				return args[i].Float64()
			}
			return 0
		}

		switch op {
		case "q":
			saved = append(saved, gs)
		case "Q":
			if n := len(saved); n > 0 {
				gs = saved[n-1]
				saved = saved[:n-1]
			}
		case "cm":
			if m, ok := matrixOf(args); ok {
				gs.ctm = m.mul(gs.ctm)
			}
		case "Do":
			if len(args) != 1 || depth >= maxFormDepth {
				return
			}
			xo := res.Key("XObject").Key(args[0].Name())
			if xo.Key("Subtype").Name() != "Form" {
				return
			}
			m, _ := matrixOf(arrayValues(xo.Key("Matrix")))
			inner := xo.Key("Resources")
			if inner.Kind() != pdf.Dict {
				inner = res
			}
			if g := f.read([]pdf.Value{xo}, inner, m.mul(gs.ctm), depth+1); len(g) > 0 {
				f.forms = append(f.forms, g)
			}

		case "BT":
			tm, tlm = identity, identity
		case "Tf":
			if len(args) == 2 {
				gs.font = pdf.Font{V: res.Key("Font").Key(args[0].Name())}
				gs.enc = gs.font.Encoder()
				gs.size = args[1].Float64()
			}
		case "Tc":
			gs.charSpace = num(0)
		case "Tw":
			gs.wordSpace = num(0)
		case "Tz":
			gs.scale = num(0) / 100
		case "TL":
			gs.leading = num(0)
		case "Ts":
			gs.rise = num(0)
		case "Td", "TD":
			if op == "TD" {
				gs.leading = -num(1)
			}
			tlm = translate(num(0), num(1)).mul(tlm)
			tm = tlm
		case "Tm":
			if m, ok := matrixOf(args); ok {
				tm, tlm = m, m
			}
		case "T*":
			nextLine()
		case "Tj":
			if len(args) == 1 {
				show(args[0].RawString())
			}
		case "'":
			nextLine()
			if len(args) == 1 {
				show(args[0].RawString())
			}
		case `"`:
			if len(args) == 3 {
				gs.wordSpace = args[0].Float64()
				gs.charSpace = args[1].Float64()
				nextLine()
				show(args[2].RawString())
			}
		case "TJ":
			if len(args) != 1 {
				return
			}
			for _, v := range arrayValues(args[0]) {
				if v.Kind() == pdf.String {
					show(v.RawString())
					continue
				}
				tm = translate(-v.Float64()/1000*gs.size*gs.scale, 0).mul(tm)
			}
		}
	}

	for _, s := range streams {
		if s.Kind() == pdf.Stream {
			pdf.Interpret(s, do)
		}
	}
	return out
}
