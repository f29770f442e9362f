package utils

import (
	"flag"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// TimeTrack logs the time elapsed since start at debug level, i.e. only
// with -verbose. Logs go to stderr, away from computed results.
func TimeTrack(start time.Time, name string) {
	log.Debugf("%s took %s", name, time.Since(start))
}

// Expression joins every non-flag argument into a single expression,
// so that `portion [1, 2] '&' (0, 4)` and `portion '[1, 2] & (0, 4)'` agree.
func Expression() string {
	return strings.Join(flag.Args(), " ")
}
