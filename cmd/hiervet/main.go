// Command hiervet runs the hierarchy analyzer over packages:
//
//	hiervet ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/hiergrade/internal/hieranalysis"
)

func main() {
	singlechecker.Main(hieranalysis.Analyzer)
}
