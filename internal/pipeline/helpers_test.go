package pipeline

import (
	"encoding/csv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// records parses inline CSV test fixtures.
func records(s string) [][]string {
	r := csv.NewReader(strings.NewReader(s))
	out, err := r.ReadAll()
	if err != nil {
		panic(err)
	}
	return out
}

// loadOpts mirrors the options the dataset package loads with.
func loadOpts() []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{""}),
	}
}
