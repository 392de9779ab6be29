package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// printTable writes rows aligned in columns under title-cased headers.
func printTable(out io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	caser := cases.Title(language.English)
	titled := make([]string, len(headers))
	for i, h := range headers {
		titled[i] = caser.String(h)
	}
	fmt.Fprintln(tw, strings.Join(titled, "\t"))

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
