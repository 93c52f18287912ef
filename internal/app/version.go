package app

import "fmt"

var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

func SetVersionBuildCommitString(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	buildDate = d
	rootCmd.Version = versionString()
}

func versionString() string {
	s := version
	if commit != "" {
		s = fmt.Sprintf("%s (%s)", s, commit)
	}
	if buildDate != "" {
		s += " built " + buildDate
	}
	return s
}
