package desktop

import (
	"context"
	"os/exec"
)

// runCommand executes an external tool and returns its standard output.
// Tests replace it to avoid touching the host desktop.
var runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}
