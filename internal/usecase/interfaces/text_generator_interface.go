package interfaces

import "context"

// ITextGenerator abstracts the generative text collaborator used for
// proposal writing. It is an opaque remote call: the engine sends a prompt
// and gets text or an error back, nothing else.
type ITextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
