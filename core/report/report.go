// Package report renders power source reports as plain text.
//
// The summary form delegates to the source's own Summary line. The detailed
// form is shared by every kind and always shows the rated output, never the
// effective output.
package report

import (
	"fmt"
	"io"

	"github.com/kilianp07/ecogrid/core/model"
)

const detailedHeader = "=== Detailed Power Report ==="

// Generate writes the report for src to w.
func Generate(w io.Writer, src model.PowerSource, detailed bool) error {
	if !detailed {
		_, err := fmt.Fprintln(w, src.Summary())
		return err
	}
	_, err := fmt.Fprintf(w, "%s\nSource ID: %s\nBase Output: %s kW\n",
		detailedHeader, src.SourceID(), model.FormatKW(src.BaseOutput()))
	return err
}
