package media

import (
	"context"
)

//go:generate mockgen -source=media.go -destination=mocks/mock.go

// File is an attachment submitted with a post.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file File) (string, error)
}
