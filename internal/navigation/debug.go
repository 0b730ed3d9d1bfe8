package navigation

import (
	"fmt"
	"sync"
)

// DebugLog prints a trace line when Debug is set. Callers pay the cost of
// formatting only when tracing is actually on.
func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}

var once sync.Once

// DebugLogOnce is DebugLog for messages that only matter the first time,
// such as a detector's geometry summary at build time.
func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	})
}
