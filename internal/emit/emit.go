// Package emit formats lookup tables as Go source literals.
package emit

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pchchv/crcrev/internal/table"
)

// PerLine returns the number of entries written per line for a table of the
// given width: 16 for 16-bit tables, 8 for 32-bit tables.
func PerLine(width uint) int {
	if width <= 16 {
		return 16
	}
	return 8
}

// Entries writes the entries of t as comma separated hexadecimal literals,
// zero-padded to width/4 digits and wrapped every PerLine(width) entries.
// Each line is prefixed with indent.
func Entries(w io.Writer, t *table.Table, width uint, indent string) error {
	bw := bufio.NewWriter(w)
	digits := int(width / 4)
	perLine := PerLine(width)
	for i, v := range t {
		switch {
		case i%perLine == 0:
			bw.WriteString(indent)
		default:
			bw.WriteByte(' ')
		}

		fmt.Fprintf(bw, "0x%0*x,", digits, v)
		if i%perLine == perLine-1 {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// Var writes t as a Go variable declaration named ident,
// typed [256]uint16 or [256]uint32 according to width.
func Var(w io.Writer, ident string, t *table.Table, width uint) error {
	typ := "uint32"
	if width <= 16 {
		typ = "uint16"
	}

	if _, err := fmt.Fprintf(w, "var %s = [%d]%s{\n", ident, table.Size, typ); err != nil {
		return err
	}

	if err := Entries(w, t, width, "\t"); err != nil {
		return err
	}

	_, err := io.WriteString(w, "}\n")
	return err
}
