// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/vcsmake/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation in a pseudo terminal and streams its output.
	//
	// The environment of the invocation is used as is; callers decide what is inherited.
	// It returns an error carrying the exit code if the process fails.
	Execute(ctx context.Context, inv *domain.Invocation, stdout, stderr io.Writer) error

	// Output runs the invocation without a terminal and returns what it printed on stdout.
	Output(ctx context.Context, inv *domain.Invocation) ([]byte, error)
}
