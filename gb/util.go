package gb

import (
	"log"
	"regexp"
	"runtime"
	"time"
)

var timeTrackFuncName = regexp.MustCompile(`^.*\.(.*)$`)

// TimeTrack logs how long the calling function took, when logger is
// non-nil. Call as defer TimeTrack(logger, time.Now()) at the top of
// the function being measured.
func TimeTrack(logger *log.Logger, start time.Time) {
	if logger == nil {
		return
	}
	elapsed := time.Since(start)
	pc, _, _, _ := runtime.Caller(1)
	name := timeTrackFuncName.ReplaceAllString(runtime.FuncForPC(pc).Name(), "$1")
	logger.Printf("%s took %s", name, elapsed)
}
