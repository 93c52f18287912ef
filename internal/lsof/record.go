package lsof

import (
	"strconv"
	"strings"

	"github.com/arjunmalhotra/portwise/pkg/model"
)

// extractRecord turns one accumulated field group into a PortRecord. The
// port is whatever follows the last colon of the socket name; entries with
// no colon or a non-numeric tail (UNIX sockets, unbound endpoints) are not
// ports and are dropped without error.
func extractRecord(pid int, command, protocol, name, state string) (model.PortRecord, bool) {
	idx := strings.LastIndex(name, ":")
	if idx == -1 {
		return model.PortRecord{}, false
	}

	port, err := strconv.Atoi(name[idx+1:])
	if err != nil || port <= 0 {
		return model.PortRecord{}, false
	}

	if state == "" {
		if protocol == "UDP" {
			state = "UDP"
		} else {
			state = "UNKNOWN"
		}
	}

	return model.PortRecord{
		Port:     port,
		PID:      pid,
		Process:  command,
		Protocol: protocol,
		State:    state,
		Address:  name,
	}, true
}
