package tui

import (
	"strings"

	"github.com/vovakirdan/tileblast/internal/level"
	"github.com/vovakirdan/tileblast/internal/obstacle"
	"github.com/vovakirdan/tileblast/internal/session"
)

// cellGlyphs maps board labels to their two-column glyphs.
var cellGlyphs = map[string]string{
	level.LabelRed:    "██",
	level.LabelGreen:  "██",
	level.LabelBlue:   "██",
	level.LabelYellow: "██",
	level.LabelTNT:    "TN",
	level.LabelBox:    "[]",
	level.LabelStone:  "##",
	level.LabelVase:   "()",
	level.EmptyLabel:  "··",
}

// kindLabels normalises obstacle kinds to their short board label.
var kindLabels = map[obstacle.Kind]string{
	obstacle.KindBox:   level.LabelBox,
	obstacle.KindStone: level.LabelStone,
	obstacle.KindVase:  level.LabelVase,
}

// Glyph returns the two-column glyph for a label.
func Glyph(label string) string {
	if g, ok := cellGlyphs[label]; ok {
		return g
	}
	return "??"
}

// displayLabel resolves what to draw at c, preferring the live obstacle.
// cracked is set for obstacles that have taken damage but still stand.
func displayLabel(s *session.Session, c level.Coord, vaseHits int) (label string, cracked bool) {
	if p, ok := s.PieceAt(c); ok {
		if label, ok := kindLabels[p.K]; ok {
			return label, p.K == obstacle.KindVase && p.HP < vaseHits
		}
	}
	return s.Board().Label(c), false
}

// RenderBoard draws the session board top row first, highlighting the
// cursor cell when cursor is on the board.
func RenderBoard(s *session.Session, theme Theme, cursor level.Coord, showCursor bool) string {
	vaseHits := s.Options().VaseHits
	b := s.Board()

	var sb strings.Builder
	sb.Grow(b.W * b.H * 4)

	for row := b.H - 1; row >= 0; row-- {
		if row < b.H-1 {
			sb.WriteRune('\n')
		}
		for col := 0; col < b.W; col++ {
			c := level.C(col, row)
			label, cracked := displayLabel(s, c, vaseHits)

			glyph := Glyph(label)
			if cracked {
				glyph = ")("
			}
			style := theme.CellStyle(label)
			if showCursor && c == cursor {
				style = style.Inherit(theme.Cursor)
			}
			sb.WriteString(style.Render(glyph))
		}
	}
	return sb.String()
}

// RenderRecord draws a static level top row first as plain text, one
// padded label per cell.
func RenderRecord(rec *level.Record) string {
	if rec == nil || level.CheckSize(rec.Width, rec.Height) != nil {
		return ""
	}

	var sb strings.Builder
	for row := rec.Height - 1; row >= 0; row-- {
		for col := 0; col < rec.Width; col++ {
			if col > 0 {
				sb.WriteRune(' ')
			}
			label := rec.CellLabelAt(col, row)
			sb.WriteString(label)
			sb.WriteString(strings.Repeat(" ", max(5-len(label), 0)))
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
