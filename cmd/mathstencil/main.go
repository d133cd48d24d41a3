// cmd/mathstencil/main.go
package main

import (
	"github.com/trallarn/math-stencil/internal/app"
	"github.com/trallarn/math-stencil/internal/appshell"
)

func main() {
	appshell.Main(app.Run)
}
