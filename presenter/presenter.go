package presenter

import (
	"fmt"
	"io"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"

	"spkconfig/configvalues"
)

// PrintSettings writes the effective settings as a table, marking values that
// differ from their defaults.
func PrintSettings(out io.Writer, path string, values *configvalues.Values) {
	fmt.Fprintln(out, "\n--- Mod Settings ---")
	fmt.Fprintf(out, "File: %s\n", path)
	fmt.Fprintln(out, "--------------------")

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	if _, err := fmt.Fprintln(w, "Key\tValue\tDefault\t"); err != nil {
		log.Warnf("Error writing to tabwriter: %v", err)
	}
	if _, err := fmt.Fprintln(w, "---\t-----\t-------\t"); err != nil {
		log.Warnf("Error writing to tabwriter: %v", err)
	}

	current := values.Map()
	changed := 0
	for _, key := range configvalues.Keys() {
		def, _ := configvalues.Default(key)
		marker := ""
		if current[key] != def {
			marker = "*"
			changed++
		}
		if _, err := fmt.Fprintf(w, "%s\t%d%s\t%d\t\n", key, current[key], marker, def); err != nil {
			log.Warnf("Error writing to tabwriter: %v", err)
		}
	}

	if err := w.Flush(); err != nil {
		log.Warnf("Error flushing tabwriter: %v", err)
	}
	fmt.Fprintln(out, "--------------------")
	fmt.Fprintf(out, "Overridden settings: %d\n", changed)
}
