package ports

import "io/fs"

// FileSystem abstracts read access to the filesystem for testability.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Open opens the file at path for streaming reads.
	Open(path string) (fs.File, error)
	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)
}
