package model

import (
	"fmt"
	"strings"
)

// PortRecord is one socket observed by the port enumerator.
type PortRecord struct {
	Port     int
	PID      int
	Process  string // short command name, may be truncated by the tool
	Protocol string // TCP, UDP, or other protocol token, uppercase
	State    string // LISTEN, ESTABLISHED, ... or UNKNOWN/UDP when the tool supplies none
	Address  string // raw socket address as reported, e.g. *:8080, 127.0.0.1:3000
}

// Key identifies one observation. Records with equal keys are duplicates;
// the first one seen wins.
func (r PortRecord) Key() string {
	return fmt.Sprintf("%d|%d|%s|%s", r.PID, r.Port, r.Protocol, r.State)
}

// IsListening reports whether the socket is a passive server endpoint.
func (r PortRecord) IsListening() bool {
	return strings.EqualFold(strings.Trim(r.State, "()"), "LISTEN")
}
