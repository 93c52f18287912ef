package proc

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Inspector answers per-process questions by shelling out to ps. Every
// query degrades to an empty/zero result on failure; callers substitute
// their own sentinels.
type Inspector struct {
	run Runner
}

func NewInspector(run Runner) *Inspector {
	return &Inspector{run: run}
}

func (i *Inspector) query(pid int, column string) string {
	out, err := i.run.Run("ps", "-o", column+"=", "-p", strconv.Itoa(pid))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ParentPID returns the parent process id, or 0 if it cannot be resolved.
func (i *Inspector) ParentPID(pid int) int {
	ppid, err := strconv.Atoi(i.query(pid, "ppid"))
	if err != nil {
		return 0
	}
	return ppid
}

// User returns the owning account name, or "" if unavailable.
func (i *Inspector) User(pid int) string {
	return i.query(pid, "user")
}

// FullCommand returns the complete command line, or "" if unavailable.
func (i *Inspector) FullCommand(pid int) string {
	return i.query(pid, "args")
}

// Command returns the short command name, or "" if unavailable.
func (i *Inspector) Command(pid int) string {
	return i.query(pid, "comm")
}

// Children returns the distinct short command names of the direct children
// of pid, in first-seen order. ps itself is excluded: it is always a
// momentary child of whoever asked.
func (i *Inspector) Children(pid int) []string {
	out, err := i.run.Run("ps", "-axo", "ppid=,comm=")
	if err != nil {
		return nil
	}

	var names []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		ppid, err := strconv.Atoi(fields[0])
		if err != nil || ppid != pid {
			continue
		}
		name := filepath.Base(strings.Join(fields[1:], " "))
		if name == "ps" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
