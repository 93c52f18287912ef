package model

// Category buckets a process by what it most likely is.
type Category string

const (
	CategoryDatabase   Category = "Database"
	CategoryWebServer  Category = "Web Server"
	CategoryDevTool    Category = "Dev Tool"
	CategoryAITool     Category = "AI Tool"
	CategoryRuntime    Category = "Language Runtime"
	CategorySystem     Category = "System Service"
	CategoryContainer  Category = "Container"
	CategoryNetworking Category = "Networking"
	CategoryOther      Category = "Other"
)

// SafetyLevel is a coarse "can I stop this" rating.
type SafetyLevel string

const (
	SafetySafe      SafetyLevel = "Safe"
	SafetyCaution   SafetyLevel = "Caution"
	SafetyDangerous SafetyLevel = "Dangerous"
)

// ProcessIntelligence is the descriptive bundle for one process.
// Every field degrades to "Unknown"/zero rather than erroring out.
type ProcessIntelligence struct {
	ParentName  string
	ParentPID   int
	FullCommand string
	User        string
	Description string
	Category    Category
	Safety      SafetyLevel
	Dependents  []string // direct child command names, first-seen order
	Explanation string   // multi-line narrative, see intel.composeExplanation
}
