package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrNoData is returned when no rainfall rows could be extracted from any page.
	ErrNoData = errors.New("no data could be extracted from the PDF")
	// ErrEmptyPDF is returned for a zero-length payload.
	ErrEmptyPDF = errors.New("empty pdf payload")
)

// Record is a single extracted station row before it is bound to a report.
// The dataframe tags drive the column names used by Summarize.
type Record struct {
	Station      string  `dataframe:"station"`
	District     string  `dataframe:"district"`
	RainfallMM   float64 `dataframe:"rainfall_mm"`
	NormalMM     float64 `dataframe:"normal_mm"`
	DeparturePct float64 `dataframe:"departure_pct"`
	Trace        bool    `dataframe:"trace"`
}

// Parser extracts station-level rainfall records from bulletin PDFs.
// It is stateless between calls and safe for concurrent use.
type Parser struct {
	debug bool
}

// New returns a Parser. With debug enabled, per-row decisions are logged.
func New(debug bool) *Parser {
	return &Parser{debug: debug}
}

// Parse reads the PDF, walks every page's positional text rows, and assembles
// rainfall records. Pages that fail text extraction are skipped; the whole
// parse fails only when nothing usable was found (ErrNoData).
func (p *Parser) Parse(ctx context.Context, data []byte) (recs []Record, err error) {
	if len(data) == 0 {
		return nil, ErrEmptyPDF
	}

	// The pdf library panics on some malformed files; surface those as errors.
	defer func() {
		if r := recover(); r != nil {
			recs = nil
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	// The header row usually appears only on the first page; the detected
	// column layout carries across pages.
	var layout columnLayout

	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			if p.debug {
				log.Printf("parser: page %d: text extraction failed: %v", i, err)
			}
			continue
		}

		pageRecs := p.buildRecords(cellRows(rows), &layout)
		if p.debug {
			log.Printf("parser: page %d: %d records", i, len(pageRecs))
		}
		recs = append(recs, pageRecs...)
	}

	if len(recs) == 0 {
		return nil, ErrNoData
	}
	return recs, nil
}
