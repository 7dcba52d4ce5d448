package parser

import (
	"log"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
)

// cell is one reassembled table cell with its left edge in page coordinates.
type cell struct {
	x    float64
	text string
}

// Fragment gaps below glueGap are the same word; gaps below cellGap are the
// same cell. Anything wider starts a new column. Values are in PDF points and
// were tuned against IMD-style daily rainfall bulletins.
const (
	glueGap = 1.5
	cellGap = 7.0
)

// cellRows converts positional text rows into cells, merging the fragments the
// PDF text layer splits a single table cell into.
func cellRows(rows pdf.Rows) [][]cell {
	out := make([][]cell, 0, len(rows))
	for _, row := range rows {
		var cells []cell
		var cur *cell
		var curEnd float64
		for _, t := range row.Content {
			s := strings.TrimSpace(t.S)
			if s == "" {
				continue
			}
			if cur != nil && t.X-curEnd < cellGap {
				if t.X-curEnd >= glueGap {
					cur.text += " "
				}
				cur.text += s
			} else {
				cells = append(cells, cell{x: t.X, text: s})
				cur = &cells[len(cells)-1]
			}
			curEnd = t.X + t.W
		}
		if len(cells) > 0 {
			out = append(out, cells)
		}
	}
	return out
}

// columnLayout records what the header row taught us about the table shape.
type columnLayout struct {
	found       bool
	hasDistrict bool
}

// buildRecords turns cell rows into rainfall records. Rows before the header
// are ignored, repeated headers and total/footer rows are skipped, and a row
// whose rainfall cell cannot be parsed is dropped rather than failing the page.
func (p *Parser) buildRecords(rows [][]cell, layout *columnLayout) []Record {
	var recs []Record
	var lastDistrict string

	for _, row := range rows {
		if isHeaderRow(row) {
			layout.found = true
			layout.hasDistrict = headerHasDistrict(row)
			continue
		}
		if !layout.found {
			continue
		}
		if isNoiseRow(row) {
			continue
		}

		labels, numbers := splitRow(row)
		if len(labels) == 0 || len(numbers) == 0 {
			continue
		}

		rec := Record{}
		switch {
		case layout.hasDistrict && len(labels) >= 2:
			rec.District = labels[0]
			rec.Station = strings.Join(labels[1:], " ")
			lastDistrict = rec.District
		case layout.hasDistrict:
			// District column left blank: the bulletin prints it once per group.
			rec.District = lastDistrict
			rec.Station = labels[0]
		default:
			rec.Station = strings.Join(labels, " ")
		}

		mm, trace, ok := parseValue(numbers[0])
		if !ok {
			if p.debug {
				log.Printf("parser: skipping row for %q: unparseable rainfall %q", rec.Station, numbers[0])
			}
			continue
		}
		rec.RainfallMM = mm
		rec.Trace = trace

		if len(numbers) > 1 {
			if v, _, ok := parseValue(numbers[1]); ok {
				rec.NormalMM = v
			}
		}
		if len(numbers) > 2 {
			if v, _, ok := parseValue(numbers[2]); ok {
				rec.DeparturePct = v
			}
		}

		recs = append(recs, rec)
	}
	return recs
}

func isHeaderRow(row []cell) bool {
	joined := strings.ToUpper(rowText(row))
	if !strings.Contains(joined, "STATION") {
		return false
	}
	return strings.Contains(joined, "RAINFALL") || strings.Contains(joined, "ACTUAL")
}

func headerHasDistrict(row []cell) bool {
	return strings.Contains(strings.ToUpper(rowText(row)), "DISTRICT")
}

// isNoiseRow filters totals, averages and page furniture that share the table
// body's layout.
func isNoiseRow(row []cell) bool {
	first := strings.ToUpper(row[0].text)
	for _, prefix := range []string{"TOTAL", "AVERAGE", "DISTRICT TOTAL", "STATE", "PAGE", "REPORT", "NOTE"} {
		if strings.HasPrefix(first, prefix) {
			return true
		}
	}
	return false
}

// splitRow separates leading label cells from the trailing value cells.
// A cell counts as a value once it parses as one of the accepted tokens.
func splitRow(row []cell) (labels, numbers []string) {
	seenNumber := false
	for _, c := range row {
		if _, _, ok := parseValue(c.text); ok {
			seenNumber = true
			numbers = append(numbers, c.text)
			continue
		}
		if seenNumber {
			// Text after numbers is a remark column; bulletins use it for
			// catchment notes. Not part of the record.
			break
		}
		labels = append(labels, c.text)
	}
	return labels, numbers
}

// parseValue interprets one value cell. NIL and dash variants mean no rain,
// TR/TRACE means unmeasurable rain (0.0 mm with the trace flag set).
func parseValue(s string) (mm float64, trace bool, ok bool) {
	v := strings.ToUpper(strings.TrimSpace(s))
	v = strings.TrimSuffix(v, "MM")
	v = strings.TrimSuffix(v, "%")
	v = strings.TrimSpace(v)

	switch v {
	case "NIL", "-", "--", "N.A.", "NA":
		return 0, false, true
	case "TR", "TRACE":
		return 0, true, true
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, false
	}
	return f, false, true
}

func rowText(row []cell) string {
	parts := make([]string, 0, len(row))
	for _, c := range row {
		parts = append(parts, c.text)
	}
	return strings.Join(parts, " ")
}
