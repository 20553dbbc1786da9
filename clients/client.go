package clients

import (
	"context"
)

// CommandSender delivers a command to the service that executes it.
type CommandSender interface {
	Send(ctx context.Context, cmd any) error
}
