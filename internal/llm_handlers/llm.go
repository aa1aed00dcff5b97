package llmHandlers

import "context"

// ChunkFunc receives one text fragment as soon as the provider emits it.
// Returning an error aborts the stream.
type ChunkFunc func(ctx context.Context, chunk string) error

// Client is a streaming completion provider. ChatStream sends the
// rendered prompt and forwards each fragment through onChunk, returning
// only once the provider signals completion or fails.
type Client interface {
	ChatStream(ctx context.Context, prompt string, onChunk ChunkFunc) error
}
