package ingestion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// gota treats a "NaN" string element as NA.
const naCell = "NaN"

var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"nan":  true,
	"n/a":  true,
	"null": true,
}

func isMissing(cell string) bool {
	return missingTokens[strings.ToLower(strings.TrimSpace(cell))]
}

// newFrame builds a string-typed DataFrame from a header and ragged rows.
// Short rows are padded with missing cells and long rows truncated.
func newFrame(header []string, records [][]string) (dataframe.DataFrame, error) {
	if len(header) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("source has no columns")
	}

	names := columnNames(header)
	cols := make([]series.Series, len(names))
	for j, name := range names {
		values := make([]string, len(records))
		for i, rec := range records {
			cell := naCell
			if j < len(rec) && !isMissing(rec[j]) {
				cell = rec[j]
			}
			values[i] = cell
		}
		cols[j] = series.New(values, series.String, name)
	}

	df := dataframe.New(cols...)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error building frame: %w", df.Err)
	}
	return df, nil
}

// columnNames trims the header, strips a UTF-8 BOM and renames duplicates
// and blanks so every column is addressable.
func columnNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if name == "" {
			name = "Column " + strconv.Itoa(i+1)
		}
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = name + "_" + strconv.Itoa(n)
		} else {
			seen[name] = 1
		}
		names[i] = name
	}
	return names
}
