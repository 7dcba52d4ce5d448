package parser

import "fmt"

// selfCheckRows is a canned bulletin fragment exercising the header, a district
// carry-over row, a trace reading and a totals row.
var selfCheckRows = [][]cell{
	{{x: 40, text: "DISTRICT"}, {x: 160, text: "STATION"}, {x: 300, text: "RAINFALL (MM)"}, {x: 400, text: "NORMAL"}, {x: 480, text: "DEP %"}},
	{{x: 40, text: "NORTH"}, {x: 160, text: "HILLTOP"}, {x: 300, text: "42.5"}, {x: 400, text: "31.0"}, {x: 480, text: "37"}},
	{{x: 160, text: "RIVERSIDE"}, {x: 300, text: "TR"}, {x: 400, text: "12.0"}, {x: 480, text: "-100"}},
	{{x: 40, text: "SOUTH"}, {x: 160, text: "LAKEVIEW"}, {x: 300, text: "NIL"}, {x: 400, text: "8.5"}, {x: 480, text: "-100"}},
	{{x: 40, text: "TOTAL"}, {x: 300, text: "42.5"}},
}

// SelfCheck runs the row assembler over canned rows and verifies the expected
// records come out. It backs /test-parser and the detailed health check.
func (p *Parser) SelfCheck() error {
	var layout columnLayout
	recs := p.buildRecords(selfCheckRows, &layout)

	if len(recs) != 3 {
		return fmt.Errorf("parser self-check: expected 3 records, got %d", len(recs))
	}
	if recs[0].Station != "HILLTOP" || recs[0].District != "NORTH" || recs[0].RainfallMM != 42.5 {
		return fmt.Errorf("parser self-check: unexpected first record %+v", recs[0])
	}
	if recs[1].District != "NORTH" || !recs[1].Trace {
		return fmt.Errorf("parser self-check: district carry-over or trace handling broken: %+v", recs[1])
	}
	if recs[2].Station != "LAKEVIEW" || recs[2].RainfallMM != 0 || recs[2].Trace {
		return fmt.Errorf("parser self-check: NIL handling broken: %+v", recs[2])
	}
	return nil
}
