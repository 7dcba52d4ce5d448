package parser

import (
	"context"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
)

func TestCellRows(t *testing.T) {
	tests := []struct {
		name string
		row  []pdf.Text
		want []string
	}{
		{
			name: "glued fragments form one word",
			row: []pdf.Text{
				{S: "HILL", X: 100, W: 20},
				{S: "TOP", X: 120.5, W: 15},
			},
			want: []string{"HILLTOP"},
		},
		{
			name: "word gap inside a cell",
			row: []pdf.Text{
				{S: "MOUNT", X: 100, W: 25},
				{S: "ABU", X: 129, W: 15},
			},
			want: []string{"MOUNT ABU"},
		},
		{
			name: "column gap starts a new cell",
			row: []pdf.Text{
				{S: "HILLTOP", X: 100, W: 35},
				{S: "42.5", X: 300, W: 20},
			},
			want: []string{"HILLTOP", "42.5"},
		},
		{
			name: "whitespace fragments dropped",
			row: []pdf.Text{
				{S: "  ", X: 100, W: 5},
				{S: "NIL", X: 300, W: 15},
			},
			want: []string{"NIL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := cellRows(pdf.Rows{{Position: 700, Content: tt.row}})
			if len(tt.want) == 0 {
				assert.Empty(t, rows)
				return
			}
			assert.Len(t, rows, 1)
			got := make([]string, 0, len(rows[0]))
			for _, c := range rows[0] {
				got = append(got, c.text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in        string
		wantMM    float64
		wantTrace bool
		wantOK    bool
	}{
		{"42.5", 42.5, false, true},
		{"-55", -55, false, true},
		{"0.0", 0, false, true},
		{"NIL", 0, false, true},
		{"nil", 0, false, true},
		{"-", 0, false, true},
		{"N.A.", 0, false, true},
		{"TR", 0, true, true},
		{"Trace", 0, true, true},
		{"12.0 MM", 12, false, true},
		{"37%", 37, false, true},
		{"HILLTOP", 0, false, false},
		{"", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			mm, trace, ok := parseValue(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantMM, mm)
				assert.Equal(t, tt.wantTrace, trace)
			}
		})
	}
}

func TestBuildRecords(t *testing.T) {
	p := New(false)

	t.Run("rows before the header are ignored", func(t *testing.T) {
		rows := [][]cell{
			{{text: "DAILY RAINFALL BULLETIN"}},
			{{text: "SOMEPLACE"}, {text: "99.9"}},
			{{text: "STATION"}, {text: "RAINFALL (MM)"}},
			{{text: "HILLTOP"}, {text: "42.5"}},
		}
		var layout columnLayout
		recs := p.buildRecords(rows, &layout)
		assert.Len(t, recs, 1)
		assert.Equal(t, "HILLTOP", recs[0].Station)
		assert.Empty(t, recs[0].District)
	})

	t.Run("layout carries across pages", func(t *testing.T) {
		layout := columnLayout{found: true, hasDistrict: false}
		recs := p.buildRecords([][]cell{{{text: "RIVERSIDE"}, {text: "3.0"}}}, &layout)
		assert.Len(t, recs, 1)
		assert.Equal(t, 3.0, recs[0].RainfallMM)
	})

	t.Run("repeated header and totals skipped", func(t *testing.T) {
		rows := [][]cell{
			{{text: "STATION"}, {text: "ACTUAL"}},
			{{text: "HILLTOP"}, {text: "1.0"}},
			{{text: "STATION"}, {text: "ACTUAL"}},
			{{text: "RIVERSIDE"}, {text: "2.0"}},
			{{text: "TOTAL"}, {text: "3.0"}},
			{{text: "AVERAGE"}, {text: "1.5"}},
		}
		var layout columnLayout
		recs := p.buildRecords(rows, &layout)
		assert.Len(t, recs, 2)
	})

	t.Run("unparseable rainfall drops the row only", func(t *testing.T) {
		rows := [][]cell{
			{{text: "STATION"}, {text: "RAINFALL"}},
			{{text: "HILLTOP"}, {text: "42.5"}},
			{{text: "BROKEN"}},
			{{text: "RIVERSIDE"}, {text: "3.0"}},
		}
		var layout columnLayout
		recs := p.buildRecords(rows, &layout)
		assert.Len(t, recs, 2)
	})

	t.Run("remark column after values ignored", func(t *testing.T) {
		rows := [][]cell{
			{{text: "STATION"}, {text: "RAINFALL"}, {text: "NORMAL"}},
			{{text: "HILLTOP"}, {text: "42.5"}, {text: "31.0"}, {text: "HEAVY SPELL"}},
		}
		var layout columnLayout
		recs := p.buildRecords(rows, &layout)
		assert.Len(t, recs, 1)
		assert.Equal(t, 42.5, recs[0].RainfallMM)
		assert.Equal(t, 31.0, recs[0].NormalMM)
	})
}

func TestSelfCheck(t *testing.T) {
	assert.NoError(t, New(false).SelfCheck())
}

func TestSummarize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, Summary{}, Summarize(nil))
	})

	t.Run("aggregates", func(t *testing.T) {
		recs := []Record{
			{Station: "HILLTOP", RainfallMM: 42.5},
			{Station: "RIVERSIDE", RainfallMM: 0, Trace: true},
			{Station: "LAKEVIEW", RainfallMM: 7.5},
		}
		s := Summarize(recs)
		assert.Equal(t, 3, s.Stations)
		assert.Equal(t, 50.0, s.TotalMM)
		assert.InDelta(t, 16.7, s.MeanMM, 0.05)
		assert.Equal(t, 42.5, s.MaxMM)
		assert.Equal(t, "HILLTOP", s.WettestStation)
		assert.Equal(t, 1, s.TraceStations)
	})
}

func TestParse_InvalidInput(t *testing.T) {
	p := New(false)
	ctx := context.Background()

	_, err := p.Parse(ctx, nil)
	assert.ErrorIs(t, err, ErrEmptyPDF)

	_, err = p.Parse(ctx, []byte("this is not a pdf"))
	assert.Error(t, err)
}
