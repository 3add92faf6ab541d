package table

import (
	"github.com/dgelleru/fasttools/internal/quality"
	"github.com/dgelleru/fasttools/internal/sequence"
)

// Column is one exported table column: a name and one value per row.
// This generic form is the integration point for external reporting and
// plotting collaborators.
type Column struct {
	Name   string `json:"name"`
	Values []any  `json:"values"`
}

// Columns exports the table's base columns (id, sequence, length) and
// every derived column computed so far. Paired tables export per-mate
// columns with "_r1"/"_r2" name suffixes.
func (t *Table) Columns() []Column {
	var columns []Column
	for mate := 0; mate < t.Mates(); mate++ {
		suffix := ""
		if t.paired {
			suffix = [2]string{"_r1", "_r2"}[mate]
		}

		ids := make([]any, len(t.rows))
		seqs := make([]any, len(t.rows))
		lengths := make([]any, len(t.rows))
		for i, row := range t.rows {
			rec := row.Mate(mate)
			ids[i] = rec.ID
			seqs[i] = rec.Seq
			lengths[i] = rec.Len()
		}
		columns = append(columns,
			Column{Name: "id" + suffix, Values: ids},
			Column{Name: "sequence" + suffix, Values: seqs},
			Column{Name: "length" + suffix, Values: lengths},
		)

		if col := t.AvgQuality(mate); col != nil {
			columns = append(columns, Column{Name: ColAvgQuality + suffix, Values: anyFloats(col)})
		}
		if col := t.GC(mate); col != nil {
			columns = append(columns, Column{Name: ColGCFraction + suffix, Values: anyFloats(col)})
		}
		if col := t.RevComp(mate); col != nil {
			columns = append(columns, Column{Name: ColReverseComplement + suffix, Values: anyStrings(col)})
		}
		if col := t.AminoAcids(mate); col != nil {
			columns = append(columns, Column{Name: ColAminoAcid + suffix, Values: anyStrings(col)})
		}
	}
	return columns
}

func anyFloats(values []float64) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func anyStrings(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Summary aggregates the table for quick reporting.
type Summary struct {
	Sample      string  `json:"sample"`
	Paired      bool    `json:"paired"`
	Rows        int     `json:"rows"`
	Reads       int     `json:"reads"`
	MeanLength  float64 `json:"mean_length"`
	MeanGC      float64 `json:"mean_gc"`
	HasQuality  bool    `json:"has_quality"`
	MeanQuality float64 `json:"mean_quality,omitempty"`
}

// Summarize computes aggregate statistics across all reads (both mates
// for paired tables). It reads only the immutable source fields and does
// not populate any derived column.
func (t *Table) Summarize() Summary {
	summary := Summary{
		Sample:     t.sample,
		Paired:     t.paired,
		Rows:       len(t.rows),
		Reads:      len(t.rows) * t.Mates(),
		HasQuality: t.HasQuality(),
	}
	if summary.Reads == 0 {
		return summary
	}

	totalLength := 0
	totalGC := 0.0
	totalQuality := 0.0
	for _, row := range t.rows {
		for mate := 0; mate < t.Mates(); mate++ {
			rec := row.Mate(mate)
			totalLength += rec.Len()
			totalGC += sequence.GCFraction(rec.Seq)
			if summary.HasQuality {
				totalQuality += quality.Average(rec.Qual)
			}
		}
	}

	reads := float64(summary.Reads)
	summary.MeanLength = float64(totalLength) / reads
	summary.MeanGC = totalGC / reads
	if summary.HasQuality {
		summary.MeanQuality = totalQuality / reads
	}
	return summary
}
