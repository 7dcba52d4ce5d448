package parser

import (
	"math"

	"github.com/go-gota/gota/dataframe"
)

// Summary aggregates one report's records for the process response.
type Summary struct {
	Stations       int     `json:"stations"`
	TotalMM        float64 `json:"total_mm"`
	MeanMM         float64 `json:"mean_mm"`
	MaxMM          float64 `json:"max_mm"`
	WettestStation string  `json:"wettest_station,omitempty"`
	TraceStations  int     `json:"trace_stations"`
}

// Summarize computes report-level aggregates over a dataframe of the records.
func Summarize(recs []Record) Summary {
	if len(recs) == 0 {
		return Summary{}
	}

	df := dataframe.LoadStructs(recs)
	col := df.Col("rainfall_mm")

	s := Summary{
		Stations: len(recs),
		TotalMM:  round1(col.Sum()),
		MeanMM:   round1(col.Mean()),
		MaxMM:    round1(col.Max()),
	}

	wettest := 0
	for i, r := range recs {
		if r.Trace {
			s.TraceStations++
		}
		if r.RainfallMM > recs[wettest].RainfallMM {
			wettest = i
		}
	}
	s.WettestStation = recs[wettest].Station
	return s
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
