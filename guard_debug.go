//go:build clampdebug

package clamp

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/sirkon/clamp/rules"
)

// guardCallerSkip points runtime.Caller at the code opening a guard:
// trackGuard, newGuard, NewGuard or Int.Modify, then the caller.
const guardCallerSkip = 3

func trackGuard[V any](g *Guard[V], status *guardStatus) {
	if _, file, line, ok := runtime.Caller(guardCallerSkip); ok {
		status.site = fmt.Sprintf("%s:%d", file, line)
	}

	runtime.AddCleanup(g, reportLeak, status)
}

func reportLeak(status *guardStatus) {
	if status.state != GuardOpen {
		return
	}

	leakLogger().Warn(
		"guard was neither committed nor discarded",
		slog.String("site", status.site),
		slog.String("rule", rules.UnresolvedGuard().String()),
	)
}
