package intel

import (
	"strings"

	"github.com/arjunmalhotra/portwise/pkg/model"
)

type knownProcess struct {
	description string
	category    model.Category
	safety      model.SafetyLevel
}

// knowledge maps well-known lowercased process names to hand-curated
// descriptions. A hit here bypasses the keyword heuristics entirely.
var knowledge = map[string]knownProcess{
	"postgres":           {"PostgreSQL database server", model.CategoryDatabase, model.SafetyCaution},
	"mysqld":             {"MySQL database server", model.CategoryDatabase, model.SafetyCaution},
	"mariadbd":           {"MariaDB database server", model.CategoryDatabase, model.SafetyCaution},
	"redis-server":       {"Redis in-memory data store", model.CategoryDatabase, model.SafetyCaution},
	"mongod":             {"MongoDB database server", model.CategoryDatabase, model.SafetyCaution},
	"memcached":          {"Memcached object cache", model.CategoryDatabase, model.SafetyCaution},
	"etcd":               {"etcd distributed key-value store", model.CategoryDatabase, model.SafetyCaution},
	"clickhouse-server":  {"ClickHouse analytics database", model.CategoryDatabase, model.SafetyCaution},
	"nginx":              {"nginx web server / reverse proxy", model.CategoryWebServer, model.SafetyCaution},
	"httpd":              {"Apache HTTP server", model.CategoryWebServer, model.SafetyCaution},
	"caddy":              {"Caddy web server", model.CategoryWebServer, model.SafetySafe},
	"traefik":            {"Traefik reverse proxy", model.CategoryWebServer, model.SafetyCaution},
	"dockerd":            {"Docker daemon", model.CategoryContainer, model.SafetyCaution},
	"containerd":         {"containerd container runtime", model.CategoryContainer, model.SafetyCaution},
	"com.docker.backend": {"Docker Desktop backend", model.CategoryContainer, model.SafetyCaution},
	"docker-proxy":       {"Docker port forwarder", model.CategoryContainer, model.SafetyCaution},
	"podman":             {"Podman container engine", model.CategoryContainer, model.SafetyCaution},
	"kubelet":            {"Kubernetes node agent", model.CategoryContainer, model.SafetyDangerous},
	"ollama":             {"Ollama local LLM server", model.CategoryAITool, model.SafetySafe},
	"node":               {"Node.js runtime", model.CategoryRuntime, model.SafetySafe},
	"python":             {"Python interpreter", model.CategoryRuntime, model.SafetySafe},
	"python3":            {"Python interpreter", model.CategoryRuntime, model.SafetySafe},
	"java":               {"Java virtual machine", model.CategoryRuntime, model.SafetySafe},
	"ruby":               {"Ruby interpreter", model.CategoryRuntime, model.SafetySafe},
	"php":                {"PHP interpreter", model.CategoryRuntime, model.SafetySafe},
	"deno":               {"Deno runtime", model.CategoryRuntime, model.SafetySafe},
	"bun":                {"Bun runtime", model.CategoryRuntime, model.SafetySafe},
	"vite":               {"Vite dev server", model.CategoryDevTool, model.SafetySafe},
	"webpack":            {"webpack dev server", model.CategoryDevTool, model.SafetySafe},
	"gradle":             {"Gradle build daemon", model.CategoryDevTool, model.SafetySafe},
	"sshd":               {"OpenSSH server", model.CategoryNetworking, model.SafetyDangerous},
	"launchd":            {"macOS service manager", model.CategorySystem, model.SafetyDangerous},
	"systemd":            {"Linux service manager", model.CategorySystem, model.SafetyDangerous},
	"mdnsresponder":      {"macOS Bonjour/mDNS service", model.CategorySystem, model.SafetyDangerous},
	"rapportd":           {"macOS device-continuity service", model.CategorySystem, model.SafetyDangerous},
	"cupsd":              {"CUPS print service", model.CategorySystem, model.SafetyCaution},
	"dnsmasq":            {"dnsmasq DNS/DHCP server", model.CategoryNetworking, model.SafetyCaution},
	"tailscaled":         {"Tailscale VPN daemon", model.CategoryNetworking, model.SafetyCaution},
}

type categoryRule struct {
	category model.Category
	keywords []string
	// AI tools often hide behind generic launcher names, so that rule also
	// inspects the command line.
	matchCommandLine bool
}

// categoryRules are evaluated top to bottom, first match wins. Order
// matters: a container daemon whose command line says "serve" is still a
// container daemon, not a dev tool.
var categoryRules = []categoryRule{
	{model.CategoryDatabase, []string{"postgres", "mysql", "mariadb", "redis", "mongo", "memcached", "sqlite", "clickhouse", "cassandra", "etcd"}, false},
	{model.CategoryWebServer, []string{"nginx", "apache", "httpd", "caddy", "traefik", "haproxy"}, false},
	{model.CategoryContainer, []string{"docker", "containerd", "podman", "colima", "kube", "lima"}, false},
	{model.CategoryAITool, []string{"ollama", "llama", "lmstudio", "mlx", "whisper", "comfyui"}, true},
	{model.CategoryRuntime, []string{"node", "python", "java", "ruby", "php", "perl", "deno", "bun"}, false},
}

// devToolKeywords are tested against the command line only, after every
// name-based rule has missed.
var devToolKeywords = []string{"serve", "dev", "watch", "webpack", "vite", "nodemon", "esbuild"}

var systemCriticalKeywords = []string{"launchd", "systemd", "kernel", "init", "windowserver", "loginwindow"}

var sensitiveKeywords = []string{"postgres", "mysql", "redis", "mongo", "docker", "containerd", "etcd", "memcached"}

// categoryAdvice holds the one advisory sentence appended to every
// explanation. CategoryOther is absent: its advice depends on whether
// anything depends on the process.
var categoryAdvice = map[model.Category]string{
	model.CategoryDatabase:   "Stopping it may break apps that depend on it and risks losing unsaved data.",
	model.CategoryWebServer:  "Stopping it takes down whatever sites or APIs it is serving.",
	model.CategoryDevTool:    "Usually safe to stop; restart it from your project when needed.",
	model.CategoryAITool:     "Safe to stop; any loaded models will be unloaded.",
	model.CategoryRuntime:    "This is an app or script; check what launched it before stopping.",
	model.CategorySystem:     "Part of the operating system. Do not stop it.",
	model.CategoryContainer:  "Stopping it will stop the containers it manages.",
	model.CategoryNetworking: "Stopping it may break networking features.",
}

func categoryFor(name, commandLine string) model.Category {
	name = strings.ToLower(name)
	commandLine = strings.ToLower(commandLine)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.category
			}
			if rule.matchCommandLine && strings.Contains(commandLine, kw) {
				return rule.category
			}
		}
	}
	for _, kw := range devToolKeywords {
		if strings.Contains(commandLine, kw) {
			return model.CategoryDevTool
		}
	}
	return model.CategoryOther
}

func safetyFor(name, user string) model.SafetyLevel {
	name = strings.ToLower(name)

	if user == "root" {
		return model.SafetyDangerous
	}
	for _, kw := range systemCriticalKeywords {
		if strings.Contains(name, kw) {
			return model.SafetyDangerous
		}
	}
	for _, kw := range sensitiveKeywords {
		if strings.Contains(name, kw) {
			return model.SafetyCaution
		}
	}
	return model.SafetySafe
}
