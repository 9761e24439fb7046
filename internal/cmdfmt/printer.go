// Package cmdfmt renders command output either as an aligned table or as JSON,
// selected once when the printer is created so commands never branch on the
// output mode themselves.
package cmdfmt

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Printer interface {
	Row(values ...any)
	Flush()
}

// NewPrinter returns a table printer writing to stdout, or a JSON printer when
// jsonOutput is set. The column names become table headers and JSON keys.
func NewPrinter(columns []string, jsonOutput bool) Printer {
	if jsonOutput {
		return &jsonPrinter{columns: columns}
	}

	w := table.NewWriter()
	w.SetOutputMirror(os.Stdout)
	header := make(table.Row, 0, len(columns))
	for _, col := range columns {
		header = append(header, col)
	}
	w.AppendHeader(header)
	w.SetStyle(table.StyleLight)
	return &tablePrinter{writer: w}
}

type tablePrinter struct {
	writer table.Writer
}

func (p *tablePrinter) Row(values ...any) {
	p.writer.AppendRow(values)
}

func (p *tablePrinter) Flush() {
	p.writer.Render()
}

type jsonPrinter struct {
	columns []string
	rows    []map[string]any
}

func (p *jsonPrinter) Row(values ...any) {
	if len(values) != len(p.columns) {
		panic(fmt.Sprintf("unable to print json, %d values for %d columns (this is likely a bug)",
			len(values), len(p.columns)))
	}
	item := make(map[string]any, len(values))
	for i, col := range p.columns {
		item[col] = values[i]
	}
	p.rows = append(p.rows, item)
}

func (p *jsonPrinter) Flush() {
	data, err := json.MarshalIndent(p.rows, "", " ")
	if err != nil {
		panic("unable to marshal json (this is likely a bug): " + err.Error())
	}
	fmt.Println(string(data))
}
