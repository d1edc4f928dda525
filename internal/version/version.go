package version

import "strings"

const Version = "0.1.0.dev1"

var Environment string

// Commit is set at build time with -ldflags.
var Commit = "unknown"

func init() {
	if strings.Contains(Version, "dev") {
		Environment = "development"
	} else {
		Environment = "production"
	}
}
