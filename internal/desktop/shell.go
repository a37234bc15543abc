package desktop

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/chronois/avrora/internal/domain"
)

// SpawnFunc starts a program and returns a function that waits for it.
type SpawnFunc func(name string, args ...string) (wait func() error, err error)

// spawnCommand is the default SpawnFunc. The child gets no pipes: its
// standard streams go to the null device, so programs it backgrounds
// cannot keep the wait open after sh exits.
func spawnCommand(name string, args ...string) (func() error, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd.Wait, nil
}

// Shell starts custom command actions through sh -c.
type Shell struct {
	tools
}

// NewShell returns a shell starter.
func NewShell(opts ...Option) *Shell {
	return &Shell{tools: newTools(opts)}
}

// Start implements domain.Shell. A non-zero exit is reported through the
// code, not the error. The process is not tied to ctx: launched programs
// outlive the command that started them.
func (s *Shell) Start(ctx context.Context, command string, exited func(code int, err error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	wait, err := s.spawn("sh", "-c", command)
	if err != nil {
		return fmt.Errorf("start %q: %w", command, err)
	}
	s.log.Debug("command %q started", command)

	go func() {
		code, err := 0, wait()
		if err != nil {
			if c, ok := exitCode(err); ok {
				code, err = c, nil
				s.log.Warn("command %q exited with %d", command, code)
			} else {
				code = -1
			}
		}
		if exited != nil {
			exited(code, err)
		}
	}()
	return nil
}

var _ domain.Shell = (*Shell)(nil)
