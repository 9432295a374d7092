package cartscreen

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Print writes the view as plain text for terminals.
func Print(w io.Writer, v View) error {
	var b strings.Builder

	fmt.Fprintf(&b, "== %s ==\n", v.Title)

	switch v.Screen {
	case ScreenAuth:
		b.WriteString("(login required)\n")
	case ScreenLoading:
		b.WriteString("...\n")
	case ScreenEmpty:
		fmt.Fprintf(&b, "%s\n%s\n", v.Empty.Header, v.Empty.Text)
	case ScreenList:
		tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		for _, section := range v.Sections {
			fmt.Fprintf(tw, "\n%s\n", section.Label)
			for _, row := range section.Rows {
				product := row.Product
				if row.Variant != "" {
					product += " (" + row.Variant + ")"
				}

				marker := ""
				if row.Loading {
					marker = "*"
				}

				fmt.Fprintf(tw, "  %s\t%s\tx%d\t%s\t%s\n", product, row.Producer, row.Quantity, row.Price, marker)
			}
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("tw.Flush: %w", err)
		}

		b.WriteString("\n")
		for _, total := range v.Totals {
			fmt.Fprintf(&b, "%s\n", total)
		}

		button := "[" + v.SendOrder.Title + "]"
		if v.SendOrder.Loading {
			button += " ..."
		}
		b.WriteString(button + "\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}

	return nil
}
