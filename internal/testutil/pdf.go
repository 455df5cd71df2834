// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package testutil builds small, valid PDF documents for tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// PageWidth and PageHeight are the media box of every generated page
// (US Letter, in points).
const (
	PageWidth  = 612
	PageHeight = 792
)

// TextX and TextY are where each page's text object starts.
const (
	TextX = 72
	TextY = 720
)

// toUnicode maps the two-byte codes 0x0020-0x007E of the Identity-H font
// to the same Unicode code points.
const toUnicode = `12 dict begin
begincmap
1 begincodespacerange <0000> <FFFF> endcodespacerange
1 beginbfrange <0020> <007E> <0020> endbfrange
endcmap
end`

// BuildPDF returns a PDF with one page per entry in pages. Each page shows
// its entry once in 12pt Helvetica at (TextX, TextY).
func BuildPDF(pages ...string) []byte {
	streams := make([]string, len(pages))
	for i, text := range pages {
		streams[i] = fmt.Sprintf("BT /F1 12 Tf %d %d Td (%s) Tj ET", TextX, TextY, escape(text))
	}
	return BuildPDFContent(streams...)
}

// BuildPDFContent returns a PDF with one page per content stream. Pages
// can use /F1, a Helvetica font with one-byte codes, and /F2, a Type0 font
// with Identity-H two-byte codes and a ToUnicode map.
func BuildPDFContent(streams ...string) []byte {
	n := len(streams)
	total := 5 + 2*n // catalog, page tree, two fonts, cmap, then page + content pairs
	offsets := make([]int, total+1)

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	obj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}
	stream := func(num int, data string) {
		obj(num, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(data), data))
	}

	kids := make([]string, n)
	for i := range streams {
		kids[i] = fmt.Sprintf("%d 0 R", 6+2*i)
	}

	obj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	obj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n))
	obj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	obj(4, "<< /Type /Font /Subtype /Type0 /BaseFont /Helvetica /Encoding /Identity-H /ToUnicode 5 0 R >>")
	stream(5, toUnicode)
	for i, content := range streams {
		pageNum := 6 + 2*i
		obj(pageNum, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>",
			PageWidth, PageHeight, pageNum+1))
		stream(pageNum+1, content)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", total+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= total; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", total+1, xref)
	return buf.Bytes()
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

// WritePDF writes BuildPDF(pages...) to name inside dir and returns the
// full path.
func WritePDF(t *testing.T, dir, name string, pages ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, BuildPDF(pages...), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// WritePDFContent writes BuildPDFContent(streams...) to name inside dir
// and returns the full path.
func WritePDFContent(t *testing.T, dir, name string, streams ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, BuildPDFContent(streams...), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
