package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"bmitracker/internal/domain"
)

const timeFormat = "2006-01-02 15:04"

func printResult(w io.Writer, res domain.Result) {
	fmt.Fprintf(w, "Weight:   %.2f kg\n", res.WeightKg)
	fmt.Fprintf(w, "Height:   %.2f m\n", res.HeightM)
	fmt.Fprintf(w, "BMI:      %.2f\n", res.Rounded())
	fmt.Fprintf(w, "Category: %s\n", res.Category)
}

func printHistory(w io.Writer, records []domain.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Date/Time\tWeight (kg)\tHeight (m)\tBMI\tCategory")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%.1f\t%.2f\t%.2f\t%s\n",
			r.Timestamp.Local().Format(timeFormat), r.WeightKg, r.HeightM, domain.RoundBMI(r.BMI), r.Category)
	}
	return tw.Flush()
}

func printCategories(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Category\tBMI range")
	for _, c := range domain.Categories() {
		lo, hi := c.Bounds()
		switch {
		case lo <= 0:
			fmt.Fprintf(tw, "%s\t< %.1f\n", c, hi)
		case math.IsInf(hi, 1):
			fmt.Fprintf(tw, "%s\t>= %.1f\n", c, lo)
		default:
			fmt.Fprintf(tw, "%s\t%.1f - %.1f\n", c, lo, hi)
		}
	}
	return tw.Flush()
}
