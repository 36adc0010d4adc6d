//go:build tools

// Package tools lists the development tools used with this module.
// They are installed with `go install` and are not tracked in go.mod.
package tools

// Air reloads `summits-web serve` when Go files or templates change:
//
//	go install github.com/air-verse/air@v1.63.0
//	air --build.cmd "go build -o ./tmp/summits-web ./cmd/summits-web" --build.bin "./tmp/summits-web serve"
//
// Mockgen regenerates internal/mocks from internal/ports (pinned in the go:generate line):
//
//	go generate ./internal/mocks
