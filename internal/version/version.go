package version

// Version is overridden at build time with
// -ldflags "-X github.com/trallarn/math-stencil/internal/version.Version=..."
var Version = "0.3.0"
