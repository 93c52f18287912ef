package proc

import "os/exec"

// Runner runs an external command and captures its stdout. It is the only
// I/O boundary in the core, so parsing and intelligence logic can be tested
// against canned output.
type Runner interface {
	Run(name string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}

// Exec is the live, exec-backed Runner.
var Exec Runner = execRunner{}
