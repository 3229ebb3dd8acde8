package ports

import "context"

// TargetPicker lets the user choose the build targets of a step.
//
//go:generate mockgen -source=target_picker.go -destination=mocks/mock_target_picker.go -package=mocks
type TargetPicker interface {
	// Pick shows available with selected pre-checked and returns the chosen targets in
	// selection order. ok is false when the user cancelled.
	Pick(ctx context.Context, title string, available, selected []string) (chosen []string, ok bool, err error)
}
