package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arjunmalhotra/portwise/pkg/model"
)

var (
	colorReset  = "\033[0m"
	colorBold   = "\033[2m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

func safetyColor(s model.SafetyLevel) string {
	switch s {
	case model.SafetySafe:
		return colorGreen
	case model.SafetyCaution:
		return colorYellow
	case model.SafetyDangerous:
		return colorRed
	}
	return ""
}

// RenderList prints one line per record plus the explanation narrative,
// indented under it.
func RenderList(w io.Writer, snap model.Snapshot, colorEnabled bool) {
	if len(snap.Records) == 0 {
		fmt.Fprintln(w, "No open ports found.")
		return
	}

	for _, rec := range snap.Records {
		badge := string(rec.Intel.Safety)
		if colorEnabled {
			badge = safetyColor(rec.Intel.Safety) + badge + colorReset
		}

		pidPart := fmt.Sprintf("pid %d", rec.PID)
		if colorEnabled {
			pidPart = colorBold + pidPart + colorReset
		}

		fmt.Fprintf(w, ":%d  %s/%s  %s (%s)  [%s]  %s\n",
			rec.Port, rec.Protocol, rec.State, rec.Process, pidPart, rec.Intel.Category, badge)

		for _, line := range strings.Split(rec.Intel.Explanation, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}

	fmt.Fprintf(w, "\n%d records, scanned at %s\n", len(snap.Records), snap.LastScan.Format("15:04:05"))
}
