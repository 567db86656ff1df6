package server

import (
	"fmt"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/log"
)

// RequestLogger implements core.Logger by tagging every message with the
// request that produced it before handing it to the server log
type RequestLogger struct {
	requestID string
	logger    log.Logger
}

// NewRequestLogger creates a logger for a specific request. Per-row
// progress is demoted to debug so concurrent renders do not flood the log.
func NewRequestLogger(requestID string, logger log.Logger) core.Logger {
	return &RequestLogger{
		requestID: requestID,
		logger:    logger,
	}
}

func (rl *RequestLogger) Debugf(format string, args ...interface{}) {
	rl.logger.Debugf("[%s] %s", rl.requestID, fmt.Sprintf(format, args...))
}

func (rl *RequestLogger) Infof(format string, args ...interface{}) {
	rl.logger.Debugf("[%s] %s", rl.requestID, fmt.Sprintf(format, args...))
}

func (rl *RequestLogger) Noticef(format string, args ...interface{}) {
	rl.logger.Infof("[%s] %s", rl.requestID, fmt.Sprintf(format, args...))
}
