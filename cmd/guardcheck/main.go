// Command guardcheck reports clamp guards which are neither committed nor
// discarded.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/clamp/internal/guardlint"
)

func main() {
	singlechecker.Main(guardlint.Analyzer)
}
