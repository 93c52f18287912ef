// Package lsof enumerates open network sockets by driving lsof in field
// mode and reconstructing records from its tagged line stream.
package lsof

import (
	"github.com/arjunmalhotra/portwise/internal/proc"
	"github.com/arjunmalhotra/portwise/pkg/model"
)

// List returns every open IPv4/IPv6 socket with an owning process, in the
// order lsof reports them.
// -i = internet sockets only
// -P = don't resolve port names
// -n = don't resolve hostnames
// -F pcnPTf = field mode: pid, command, name, protocol, type/state, fd
func List(run proc.Runner) ([]model.PortRecord, error) {
	out, err := run.Run("lsof", "-i", "-P", "-n", "-F", "pcnPTf")
	if err != nil {
		return nil, err
	}
	return Parse(out), nil
}
