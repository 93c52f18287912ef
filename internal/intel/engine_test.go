package intel

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/arjunmalhotra/portwise/internal/proc"
	"github.com/arjunmalhotra/portwise/pkg/model"
)

type fakeRunner struct {
	outputs map[string]string
	calls   int
}

func (f *fakeRunner) Run(name string, args ...string) (string, error) {
	f.calls++
	key := name + " " + strings.Join(args, " ")
	out, ok := f.outputs[key]
	if !ok {
		return "", errors.New("command failed")
	}
	return out, nil
}

func postgresRunner() *fakeRunner {
	return &fakeRunner{outputs: map[string]string{
		"ps -o ppid= -p 42":   "1\n",
		"ps -o user= -p 42":   "dbadmin\n",
		"ps -o args= -p 42":   "/usr/local/bin/postgres -D /data\n",
		"ps -o comm= -p 1":    "launchd\n",
		"ps -axo ppid=,comm=": "   42 postgres_worker\n   42 postgres_checkpoint\n    1 launchd\n",
	}}
}

func newTestEngine(run proc.Runner) *Engine {
	return NewEngine(run, DefaultConfig())
}

func TestDescribeKnownProcess(t *testing.T) {
	e := newTestEngine(postgresRunner())

	intel := e.Describe("postgres", 42)

	if intel.Category != model.CategoryDatabase {
		t.Errorf("category = %v, want Database", intel.Category)
	}
	if intel.Safety != model.SafetyCaution {
		t.Errorf("safety = %v, want Caution", intel.Safety)
	}
	if intel.Description != "PostgreSQL database server" {
		t.Errorf("description = %q", intel.Description)
	}
	if intel.ParentName != "launchd" || intel.ParentPID != 1 {
		t.Errorf("parent = %q/%d, want launchd/1", intel.ParentName, intel.ParentPID)
	}
	if intel.User != "dbadmin" {
		t.Errorf("user = %q", intel.User)
	}
	want := []string{"postgres_worker", "postgres_checkpoint"}
	if !reflect.DeepEqual(intel.Dependents, want) {
		t.Errorf("dependents = %v, want %v", intel.Dependents, want)
	}
}

func TestDescribeDegradesToSentinels(t *testing.T) {
	e := newTestEngine(&fakeRunner{outputs: map[string]string{}})

	intel := e.Describe("mystery", 9)

	if intel.ParentName != "Unknown" || intel.ParentPID != 0 {
		t.Errorf("parent = %q/%d, want Unknown/0", intel.ParentName, intel.ParentPID)
	}
	if intel.User != "Unknown" || intel.FullCommand != "Unknown" {
		t.Errorf("user/command = %q/%q, want Unknown/Unknown", intel.User, intel.FullCommand)
	}
	if len(intel.Dependents) != 0 {
		t.Errorf("dependents = %v, want empty", intel.Dependents)
	}
	if intel.Description != "Process: mystery" {
		t.Errorf("description = %q", intel.Description)
	}
	if intel.Category != model.CategoryOther {
		t.Errorf("category = %v, want Other", intel.Category)
	}
}

func TestDescribeCacheFreshness(t *testing.T) {
	run := postgresRunner()
	e := newTestEngine(run)

	base := time.Now()
	e.now = func() time.Time { return base }

	first := e.Describe("postgres", 42)
	queries := run.calls

	e.now = func() time.Time { return base.Add(29 * time.Second) }
	second := e.Describe("postgres", 42)

	if run.calls != queries {
		t.Errorf("second Describe within TTL ran %d extra queries", run.calls-queries)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result differs:\n%+v\n%+v", first, second)
	}
}

func TestDescribeCacheExpiry(t *testing.T) {
	run := postgresRunner()
	e := newTestEngine(run)

	base := time.Now()
	e.now = func() time.Time { return base }
	e.Describe("postgres", 42)
	queries := run.calls

	// The OS moved on: same PID, new owner.
	run.outputs["ps -o user= -p 42"] = "root\n"

	e.now = func() time.Time { return base.Add(31 * time.Second) }
	refreshed := e.Describe("postgres", 42)

	if run.calls == queries {
		t.Error("Describe after TTL should re-query")
	}
	if refreshed.User != "root" {
		t.Errorf("user after expiry = %q, want root", refreshed.User)
	}
}

func TestCachePrune(t *testing.T) {
	cfg := DefaultConfig()
	c := newCache(cfg)

	now := time.Now()
	old := now.Add(-2 * time.Minute)

	// 100 stale entries, then enough fresh ones to cross the threshold.
	for pid := 0; pid < 100; pid++ {
		c.put(pid, model.ProcessIntelligence{}, old)
	}
	for pid := 100; pid <= cfg.CachePruneThreshold; pid++ {
		c.put(pid, model.ProcessIntelligence{}, now)
	}

	if got := c.len(); got != cfg.CachePruneThreshold-100+1 {
		t.Errorf("cache size after prune = %d, want %d", got, cfg.CachePruneThreshold-100+1)
	}
	if _, ok := c.get(0, now); ok {
		t.Error("stale entry survived pruning")
	}
	if _, ok := c.get(150, now); !ok {
		t.Error("fresh entry was pruned")
	}
}

func TestCategoryHeuristicPriority(t *testing.T) {
	// "dockerd" also says "serve" on its command line; the container rule
	// must win over the dev-tool command-line heuristic.
	if got := categoryFor("dockerd", "/usr/bin/dockerd --serve"); got != model.CategoryContainer {
		t.Errorf("dockerd classified as %v, want Container", got)
	}
}

func TestCategoryHeuristics(t *testing.T) {
	tests := []struct {
		name        string
		commandLine string
		want        model.Category
	}{
		{"postgres_helper", "", model.CategoryDatabase},
		{"nginx-worker", "", model.CategoryWebServer},
		{"some-launcher", "ollama runner --model llama3", model.CategoryAITool},
		{"python3.12", "python3 app.py", model.CategoryRuntime},
		{"mytool", "mytool serve --port 8080", model.CategoryDevTool},
		{"blob", "blob --quiet", model.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := categoryFor(tt.name, tt.commandLine); got != tt.want {
				t.Errorf("categoryFor(%q, %q) = %v, want %v", tt.name, tt.commandLine, got, tt.want)
			}
		})
	}
}

func TestSafetyHeuristics(t *testing.T) {
	tests := []struct {
		name string
		user string
		want model.SafetyLevel
	}{
		{"blob", "root", model.SafetyDangerous},
		{"launchd", "alice", model.SafetyDangerous},
		{"redis-sentinel", "alice", model.SafetyCaution},
		{"blob", "alice", model.SafetySafe},
	}

	for _, tt := range tests {
		if got := safetyFor(tt.name, tt.user); got != tt.want {
			t.Errorf("safetyFor(%q, %q) = %v, want %v", tt.name, tt.user, got, tt.want)
		}
	}
}

func TestExplanationCompositionOrder(t *testing.T) {
	explanation := composeExplanation(
		"worker", "X", "Y", "root",
		[]string{"a", "b"},
		model.CategoryDatabase,
	)

	lines := strings.Split(explanation, "\n")
	want := []string{
		"X",
		"Started by Y.",
		"Running as root.",
		"Used by a, b.",
		categoryAdvice[model.CategoryDatabase],
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("explanation lines:\n%v\nwant:\n%v", lines, want)
	}
}

func TestExplanationOmitsUnknownAndSelfParent(t *testing.T) {
	explanation := composeExplanation("node", "Node.js runtime", "node", "Unknown", nil, model.CategoryRuntime)

	lines := strings.Split(explanation, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected description + advisory only, got %v", lines)
	}
	if strings.Contains(explanation, "Started by") || strings.Contains(explanation, "Running as") {
		t.Errorf("unexpected narrative lines: %q", explanation)
	}
}

func TestExplanationTruncatesDependents(t *testing.T) {
	deps := make([]string, 8)
	for i := range deps {
		deps[i] = fmt.Sprintf("child%d", i)
	}

	explanation := composeExplanation("svc", "X", "Unknown", "Unknown", deps, model.CategoryDatabase)
	if !strings.Contains(explanation, "child4") || strings.Contains(explanation, "child5") {
		t.Errorf("dependents not truncated at 5: %q", explanation)
	}
	if !strings.Contains(explanation, "(+3 more)") {
		t.Errorf("missing truncation suffix: %q", explanation)
	}
}

func TestExplanationOtherAdvisoryDependsOnDependents(t *testing.T) {
	alone := composeExplanation("blob", "Process: blob", "Unknown", "Unknown", nil, model.CategoryOther)
	if !strings.Contains(alone, "likely safe to stop") {
		t.Errorf("no-dependents advisory missing: %q", alone)
	}

	used := composeExplanation("blob", "Process: blob", "Unknown", "Unknown", []string{"a"}, model.CategoryOther)
	if !strings.Contains(used, "depend on this one") {
		t.Errorf("dependents advisory missing: %q", used)
	}
}
