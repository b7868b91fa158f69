// Package domain holds chat types and ports
package domain

import "context"

// AskInput is the POST /api/chat body. Every field is a string on the wire.
// Last, a YYYY-MM-DD period start, fills CycleDay when the client leaves it out
type AskInput struct {
	Message  string `json:"message"  validate:"required,max=4000"`
	Symptoms string `json:"symptoms" validate:"max=500"`
	CycleDay string `json:"cycleDay" validate:"max=16"`
	Last     string `json:"last"     validate:"omitempty,datetime=2006-01-02"`
}

// Reply is one answer from the assistant
type Reply struct {
	ID       string
	Response string
}

// Generator is the model port the chat service talks to
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Ask(ctx context.Context, in AskInput) (Reply, error)
}
