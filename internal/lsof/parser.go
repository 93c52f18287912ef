package lsof

import (
	"strconv"
	"strings"

	"github.com/arjunmalhotra/portwise/pkg/model"
)

// Parse reconstructs port records from lsof field output (-F pcnPTf): one
// tag character plus value per line, no record delimiter. A `p` line starts
// a new process context and an `f` line starts a new file descriptor within
// it, so both flush whatever was accumulated before them. Everything else
// decorates the current socket group.
//
// The flush on `f` is load-bearing: without it the address or state of one
// socket bleeds into the next socket of the same process.
func Parse(raw string) []model.PortRecord {
	var (
		records []model.PortRecord
		seen    = make(map[string]bool)

		pid      int
		command  string
		protocol string
		name     string
		state    string
		nameSeen bool
	)

	// A group is only actionable once its address has been observed; the
	// other fields are optional decorations.
	flush := func() {
		if !nameSeen {
			return
		}
		if rec, ok := extractRecord(pid, command, protocol, name, state); ok {
			if key := rec.Key(); !seen[key] {
				seen[key] = true
				records = append(records, rec)
			}
		}
		protocol = ""
		name = ""
		state = ""
		nameSeen = false
	}

	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		tag, value := line[0], line[1:]

		switch tag {
		case 'p':
			flush()
			pid, _ = strconv.Atoi(value)
			command = ""
		case 'c':
			command = value
		case 'f':
			flush()
		case 'P':
			protocol = strings.ToUpper(value)
		case 'n':
			name = value
			nameSeen = true
		case 'T':
			if rest, ok := strings.CutPrefix(value, "ST="); ok {
				state = rest
			}
		}
	}
	flush()

	return records
}
