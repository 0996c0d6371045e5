package session

import (
	"context"

	"github.com/hamzzakaya/nano-envanter/internal/domain"
)

// Command is a message from the presentation layer requesting a state
// mutation. Using explicit command types keeps the presentation decoupled
// from the transport.
type Command interface {
	isCommand()
}

type ReloadRequested struct{}

type AddRequested struct {
	Patch domain.ProductPatch
}

type EditConfirmed struct {
	ID    string
	Patch domain.ProductPatch
}

type DeleteConfirmed struct {
	ID string
}

func (ReloadRequested) isCommand() {}
func (AddRequested) isCommand()    {}
func (EditConfirmed) isCommand()   {}
func (DeleteConfirmed) isCommand() {}

// Dispatch applies a command to the session. Unknown commands are ignored.
func (s *Session) Dispatch(ctx context.Context, cmd Command) {
	switch c := cmd.(type) {
	case ReloadRequested:
		s.Load(ctx)
	case AddRequested:
		s.Add(ctx, c.Patch)
	case EditConfirmed:
		s.ApplyEdit(ctx, c.ID, c.Patch)
	case DeleteConfirmed:
		s.Remove(ctx, c.ID)
	}
}
