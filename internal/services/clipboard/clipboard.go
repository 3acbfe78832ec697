// Package clipboard places generated documents on the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/afero"
)

const errorReadDocumentFormat = "reading %s for clipboard: %w"

// ErrUnsupported reports that no clipboard utility is available on this system.
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a clipboard Service.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// CopyFile reads path from filesystem and hands its content to copier.
func CopyFile(copier Copier, filesystem afero.Fs, path string) error {
	data, readError := afero.ReadFile(filesystem, path)
	if readError != nil {
		return fmt.Errorf(errorReadDocumentFormat, path, readError)
	}
	return copier.Copy(string(data))
}

var _ Copier = (*Service)(nil)
