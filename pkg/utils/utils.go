package utils

import (
	"fmt"

	"trading-habit-engine/pkg/logger"

	"go.uber.org/zap"
)

// GoSafe runs fn in a goroutine and logs a recovered panic instead of crashing the process.
func GoSafe(log *logger.Logger, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Recovered from panic in goroutine",
					logger.StringField("panic", fmt.Sprint(r)),
					zap.Stack("stack"))
			}
		}()
		fn()
	}()
}
