package census

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// String prints a summary of the column: a five-number summary plus mean for
// numeric columns, level counts for categorical columns, distinct-value
// counts for text columns.
func (c *Column) String() string {
	name := c.Name()
	if name == "" {
		name = "unnamed"
	}

	t := fmt.Sprintf("column: %s\ntype: %s\n", name, c.DataType())

	switch c.DataType() {
	case DTfloat, DTint:
		x := make([]float64, c.Len())
		copy(x, c.vec.AsFloat())
		sort.Float64s(x)

		minx := x[0]
		maxx := x[len(x)-1]
		q25 := stat.Quantile(0.25, 4, x, nil)
		q50 := stat.Quantile(0.5, 4, x, nil)
		q75 := stat.Quantile(0.75, 4, x, nil)
		xbar := stat.Mean(x, nil)
		n := float64(c.Len())

		cats := []string{"min", "lq", "median", "mean", "uq", "max", "n"}
		vals := []string{
			fmt.Sprintf("%v", minx), fmt.Sprintf("%v", q25), fmt.Sprintf("%v", q50),
			fmt.Sprintf("%v", xbar), fmt.Sprintf("%v", q75), fmt.Sprintf("%v", maxx),
			fmt.Sprintf("%v", n),
		}

		return t + prettyPrint([]string{"metric", "value"}, cats, vals)
	case DTcategory:
		levels := c.vec.Levels()
		counts := c.vec.LevelCounts()

		vals := make([]string, len(counts))
		for ind, ct := range counts {
			vals[ind] = fmt.Sprintf("%d", ct)
		}

		return t + prettyPrint([]string{"level", "count"}, levels, vals)
	default:
		counts := make(map[string]int)
		var order []string
		for ind := 0; ind < c.Len(); ind++ {
			s := c.vec.ElementString(ind)
			if _, ok := counts[s]; !ok {
				order = append(order, s)
			}
			counts[s]++
		}

		vals := make([]string, len(order))
		for ind, s := range order {
			vals[ind] = fmt.Sprintf("%d", counts[s])
		}

		return t + prettyPrint([]string{"value", "count"}, order, vals)
	}
}

func prettyPrint(header, keys, vals []string) string {
	width := len(header[0])
	for _, k := range keys {
		if len(k) > width {
			width = len(k)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s  %s\n", width, header[0], header[1])
	for ind := 0; ind < len(keys); ind++ {
		fmt.Fprintf(&b, "%-*s  %s\n", width, keys[ind], vals[ind])
	}

	return b.String()
}
