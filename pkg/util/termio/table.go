// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"fmt"
	"io"
	"strings"
)

// TablePrinter is useful for printing tables to the terminal.  Rows are
// appended one at a time, and column widths are determined by the widest cell
// in each column.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       [][]string
	rightAlign    []bool
	enableEscapes bool
}

// NewTablePrinter constructs a new (empty) table with a given number of
// columns.
func NewTablePrinter(width uint) *TablePrinter {
	return &TablePrinter{
		widths:        make([]uint, width),
		rightAlign:    make([]bool, width),
		enableEscapes: true,
	}
}

// AddRow appends a row to this table.
func (p *TablePrinter) AddRow(vals ...string) uint {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = max(p.widths[i], uint(len(vals[i])))
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, make([]string, len(vals)))
	// Done
	return uint(len(p.rows) - 1)
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetEscape set the colour to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// AlignRight causes a given column to be right aligned.  Columns are left
// aligned by default.
func (p *TablePrinter) AlignRight(col uint) {
	p.rightAlign[col] = true
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible excape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetMaxWidth puts an upper bound on the width of a given column.  Longer
// cells are truncated.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], max(width, 3))
}

// Print the table to a given writer.
func (p *TablePrinter) Print(out io.Writer) error {
	var builder strings.Builder
	//
	for i, row := range p.rows {
		escapes := p.escapes[i]
		//
		for j, col := range row {
			jth := col
			jth_width := int(p.widths[j])
			jth_escape := escapes[j]
			//
			if j != 0 {
				builder.WriteString(" | ")
			}
			// Print colour (if applicable)
			if p.enableEscapes && jth_escape != "" {
				builder.WriteString(jth_escape)
			}
			// Truncate data (if applicable)
			if len(col) > jth_width {
				jth = col[0:jth_width-2] + ".."
			}
			//
			if p.rightAlign[j] {
				fmt.Fprintf(&builder, "%*s", jth_width, jth)
			} else if j != len(row)-1 {
				fmt.Fprintf(&builder, "%-*s", jth_width, jth)
			} else {
				// No trailing padding
				builder.WriteString(jth)
			}
			// Cancel colour (if applicable)
			if p.enableEscapes && jth_escape != "" {
				builder.WriteString(ResetAnsiEscape().Build())
			}
		}
		//
		builder.WriteString("\n")
	}
	//
	_, err := io.WriteString(out, builder.String())
	//
	return err
}
