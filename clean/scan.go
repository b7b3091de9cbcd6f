package clean

import (
	"log"

	"github.com/invertedv/census"
)

// ScanLabels inspects every categorical column for duplicate level labels
// and logs what it finds. Two levels are duplicates when their folded text
// agrees. Only the first duplicate per column is reported; the scan of that
// column stops there. Diagnostic only -- the table is not altered and the
// scan never fails.
func ScanLabels(tbl *census.Table, lg *log.Logger) {
	lg = logger(lg)

	for col := tbl.Next(true); col != nil; col = tbl.Next(false) {
		if col.DataType() != census.DTcategory {
			continue
		}

		levels := col.Data().Levels()
		counts := col.Data().LevelCounts()

		seen := make(map[string]int)
		for pos, label := range levels {
			first, dup := seen[census.Fold(label)]
			if !dup {
				seen[census.Fold(label)] = pos
				continue
			}

			lg.Printf("column %s: level %d duplicates level %d: label %q carried by %d rows",
				col.Name(), pos, first, label, counts[pos])

			if counts[pos] == 0 {
				lg.Printf("column %s: duplicate label %q is inert (no rows carry it) -- safe to ignore",
					col.Name(), label)
			}

			break
		}
	}
}
