package printer

import (
	"fmt"
	"strings"
)

// TextDocument renders the same receipt layout as Document, but as plain
// text. Used for receipt previews and print responses where no thermal
// printer is involved.
type TextDocument struct {
	sb    strings.Builder
	width int
}

// NewTextDocument creates a plain-text document with the given character width.
func NewTextDocument(charWidth int) *TextDocument {
	if charWidth <= 0 {
		charWidth = 32
	}
	return &TextDocument{width: charWidth}
}

// Line writes a left-aligned line.
func (d *TextDocument) Line(s string) *TextDocument {
	d.sb.WriteString(s)
	d.sb.WriteByte('\n')
	return d
}

// LineF writes a formatted left-aligned line.
func (d *TextDocument) LineF(format string, args ...interface{}) *TextDocument {
	return d.Line(fmt.Sprintf(format, args...))
}

// Center writes a line centered within the document width.
func (d *TextDocument) Center(s string) *TextDocument {
	pad := (d.width - len(s)) / 2
	if pad > 0 {
		d.sb.WriteString(strings.Repeat(" ", pad))
	}
	d.sb.WriteString(s)
	d.sb.WriteByte('\n')
	return d
}

// Blank writes an empty line.
func (d *TextDocument) Blank() *TextDocument {
	d.sb.WriteByte('\n')
	return d
}

// Separator writes a full-width separator line.
func (d *TextDocument) Separator(char byte) *TextDocument {
	d.sb.WriteString(strings.Repeat(string(char), d.width))
	d.sb.WriteByte('\n')
	return d
}

// KeyValue writes a left-aligned key and right-aligned value on one line.
func (d *TextDocument) KeyValue(key, value string) *TextDocument {
	spaces := d.width - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	d.sb.WriteString(key)
	d.sb.WriteString(strings.Repeat(" ", spaces))
	d.sb.WriteString(value)
	d.sb.WriteByte('\n')
	return d
}

// ItemLine writes a receipt item line: name (with "x<qty>" when qty > 1),
// then right-aligned total.
func (d *TextDocument) ItemLine(qty int, name, total string) *TextDocument {
	prefix := name
	if qty > 1 {
		prefix = fmt.Sprintf("%s x%d", name, qty)
	}
	return d.KeyValue(prefix, total)
}

// String returns the accumulated text.
func (d *TextDocument) String() string {
	return d.sb.String()
}
