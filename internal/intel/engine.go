// Package intel turns a bare (name, pid) pair into a human-facing bundle:
// what the process is, who launched it, what depends on it, and whether it
// is safe to stop.
package intel

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/arjunmalhotra/portwise/internal/proc"
	"github.com/arjunmalhotra/portwise/pkg/model"
)

const unknown = "Unknown"

// Config carries the cache tuning knobs. There is no config file; tests and
// flags override the defaults in process.
type Config struct {
	CacheTTL            time.Duration
	CachePruneThreshold int
	CacheStaleAge       time.Duration
}

func DefaultConfig() Config {
	return Config{
		CacheTTL:            30 * time.Second,
		CachePruneThreshold: 200,
		CacheStaleAge:       60 * time.Second,
	}
}

type Engine struct {
	inspector *proc.Inspector
	cache     *cache
	now       func() time.Time
}

func NewEngine(run proc.Runner, cfg Config) *Engine {
	return &Engine{
		inspector: proc.NewInspector(run),
		cache:     newCache(cfg),
		now:       time.Now,
	}
}

// Describe returns the intelligence bundle for a process, from cache when
// fresh. It never fails: every query that errors out degrades to a
// sentinel, so the caller always gets a complete best-effort bundle.
func (e *Engine) Describe(name string, pid int) model.ProcessIntelligence {
	now := e.now()
	if intel, ok := e.cache.get(pid, now); ok {
		return intel
	}

	parentPID := e.inspector.ParentPID(pid)
	parentName := unknown
	if parentPID > 0 {
		if n := e.inspector.Command(parentPID); n != "" {
			parentName = shortName(n)
		}
	}

	user := orUnknown(e.inspector.User(pid))
	fullCommand := orUnknown(e.inspector.FullCommand(pid))
	dependents := e.inspector.Children(pid)

	var description string
	var category model.Category
	var safety model.SafetyLevel
	if known, ok := knowledge[strings.ToLower(name)]; ok {
		description = known.description
		category = known.category
		safety = known.safety
	} else {
		description = "Process: " + name
		category = categoryFor(name, fullCommand)
		safety = safetyFor(name, user)
	}

	intel := model.ProcessIntelligence{
		ParentName:  parentName,
		ParentPID:   parentPID,
		FullCommand: fullCommand,
		User:        user,
		Description: description,
		Category:    category,
		Safety:      safety,
		Dependents:  dependents,
		Explanation: composeExplanation(name, description, parentName, user, dependents, category),
	}

	e.cache.put(pid, intel, now)
	logrus.WithFields(logrus.Fields{"pid": pid, "name": name, "category": category}).Debug("computed process intelligence")
	return intel
}

// composeExplanation builds the narrative shown to the user. Line order is
// fixed: description, started-by, running-as, used-by, advisory.
func composeExplanation(name, description, parentName, user string, dependents []string, category model.Category) string {
	lines := []string{description}

	if parentName != unknown && parentName != name {
		lines = append(lines, "Started by "+parentName+".")
	}
	if user != unknown {
		lines = append(lines, "Running as "+user+".")
	}
	if len(dependents) > 0 {
		shown := dependents
		suffix := ""
		if len(shown) > 5 {
			suffix = fmt.Sprintf(" (+%d more)", len(shown)-5)
			shown = shown[:5]
		}
		lines = append(lines, "Used by "+strings.Join(shown, ", ")+suffix+".")
	}

	if category == model.CategoryOther {
		if len(dependents) == 0 {
			lines = append(lines, "Nothing else depends on it, so it is likely safe to stop.")
		} else {
			lines = append(lines, "Other processes depend on this one; stop those first.")
		}
	} else {
		lines = append(lines, categoryAdvice[category])
	}

	return strings.Join(lines, "\n")
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}

// shortName trims a path-qualified comm down to its base name.
func shortName(name string) string {
	if idx := strings.LastIndex(name, "/"); idx != -1 {
		return name[idx+1:]
	}
	return name
}
