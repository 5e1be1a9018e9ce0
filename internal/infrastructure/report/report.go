package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"ahoy_market/internal/domain"
	"ahoy_market/internal/domain/service/analysis"
	"ahoy_market/pkg/errcodes"
)

const (
	priceDecimals  = 3
	fileTimeLayout = "20060102-150405"
)

// Kind names a report and its file prefix.
type Kind string

const (
	KindRealtime  Kind = "realtime"
	KindDealTrend Kind = "deal_trend"
)

// FileName returns the report file name for a run started at at.
func FileName(kind Kind, at time.Time) string {
	return fmt.Sprintf("%s_%s.csv", kind, at.UTC().Format(fileTimeLayout))
}

func WriteRealtimeSnapshot(w io.Writer, rows []analysis.SnapshotRow) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{"name", "localized_name", "avg_effective_price"})

	for _, row := range rows {
		records = append(records, []string{
			row.Name,
			row.LocalizedName,
			row.AvgEffectivePrice.StringFixed(priceDecimals),
		})
	}

	return write(w, records)
}

func WriteDealTrend(w io.Writer, rows []analysis.DealTrendRow) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{"date", "name", "count", "avg", "min", "max", "total"})

	for _, row := range rows {
		records = append(records, []string{
			row.Date,
			row.Name,
			strconv.FormatUint(uint64(row.Count), 10),
			row.Avg.StringFixed(priceDecimals),
			row.Min.StringFixed(priceDecimals),
			row.Max.StringFixed(priceDecimals),
			row.Total.StringFixed(priceDecimals),
		})
	}

	return write(w, records)
}

// Create opens a new report file in dir, creating dir when missing.
func Create(dir string, kind Kind, at time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return nil, domain.WrapError(err, errcodes.InternalServerError, "create report dir")
	}

	fh, err := os.Create(filepath.Join(dir, FileName(kind, at)))
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "create report file")
	}

	return fh, nil
}

func write(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)

	if err := cw.WriteAll(records); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "write report")
	}

	return nil
}
