package easel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Label holds the text content and layout state for a NodeTypeLabel node.
// Mutate through the setters (or call MarkLayoutDirty after bulk edits) so
// wrapping and measurement stay current.
type Label struct {
	Content string
	Face    text.Face
	Color   Color
	Align   TextAlign

	// MaxWidth wraps text at the given pixel width. Zero disables wrapping.
	MaxWidth float64

	// LineSpacing scales the face's natural line height. Zero means 1.0.
	LineSpacing float64

	layoutDirty bool
	lines       []string
	measuredW   float64
	measuredH   float64
}

// NewLabel creates a text node with the given content and face.
func NewLabel(name, content string, face text.Face) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeLabel,
		Label: &Label{
			Content:     content,
			Face:        face,
			Color:       Color{0, 0, 0, 1},
			layoutDirty: true,
		},
	}
	nodeDefaults(n)
	return n
}

// NewFaceSource parses TTF/OTF bytes into a face source for Face.
func NewFaceSource(ttf []byte) (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("easel: parse font: %w", err)
	}
	return src, nil
}

// Face returns a sized face from a parsed source.
func Face(src *text.GoTextFaceSource, size float64) text.Face {
	return &text.GoTextFace{Source: src, Size: size}
}

// SetContent replaces the label text and invalidates layout.
func (l *Label) SetContent(content string) {
	if l.Content == content {
		return
	}
	l.Content = content
	l.layoutDirty = true
}

// SetMaxWidth changes the wrap width and invalidates layout.
func (l *Label) SetMaxWidth(w float64) {
	if l.MaxWidth == w {
		return
	}
	l.MaxWidth = w
	l.layoutDirty = true
}

// MarkLayoutDirty forces re-wrapping and re-measurement on the next layout.
func (l *Label) MarkLayoutDirty() {
	l.layoutDirty = true
}

// MeasuredSize returns the laid-out block dimensions.
func (l *Label) MeasuredSize() (w, h float64) {
	l.layout()
	return l.measuredW, l.measuredH
}

// lineHeight returns the pixel height of one line.
func (l *Label) lineHeight() float64 {
	if l.Face == nil {
		return 0
	}
	m := l.Face.Metrics()
	h := m.HAscent + m.HDescent + m.HLineGap
	if l.LineSpacing > 0 {
		h *= l.LineSpacing
	}
	return h
}

// lineOffsetX returns the horizontal offset of a line within the block for
// the configured alignment.
func (l *Label) lineOffsetX(line string) float64 {
	if l.Align == TextAlignLeft {
		return 0
	}
	gap := l.measuredW - text.Advance(line, l.Face)
	if gap <= 0 {
		return 0
	}
	if l.Align == TextAlignCenter {
		return gap / 2
	}
	return gap
}

// layout wraps the content into lines and measures the block. No-op while
// clean.
func (l *Label) layout() {
	if !l.layoutDirty || l.Face == nil {
		return
	}
	l.layoutDirty = false
	l.lines = l.lines[:0]

	for _, para := range strings.Split(l.Content, "\n") {
		if l.MaxWidth <= 0 {
			l.lines = append(l.lines, para)
			continue
		}
		l.lines = append(l.lines, wrapLine(para, l.Face, l.MaxWidth)...)
	}

	l.measuredW = 0
	for _, line := range l.lines {
		if w := text.Advance(line, l.Face); w > l.measuredW {
			l.measuredW = w
		}
	}
	l.measuredH = float64(len(l.lines)) * l.lineHeight()
}

// wrapLine greedily packs words into lines no wider than maxWidth. A single
// word wider than maxWidth gets its own line rather than being split.
func wrapLine(para string, face text.Face, maxWidth float64) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if text.Advance(candidate, face) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
