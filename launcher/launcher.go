// Package launcher starts the external ScummVM process for a selected game.
// The spawned process outlives this application; the only thing watched is
// whether it dies immediately, and for how long it ran.
package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrLaunchFailed means ScummVM could not be started, or exited with a
// failure before it could plausibly have shown a window.
var ErrLaunchFailed = errors.New("launch failed")

// graceWindow is the best-effort cutoff: a non-zero exit after this long is
// the user quitting a broken game, not a failed launch.
const graceWindow = 3 * time.Second

// Options selects how ScummVM is invoked.
type Options struct {
	ExecPath   string
	Fullscreen bool
}

// Result describes a finished play session.
type Result struct {
	GameID  string
	Played  time.Duration
	EndedAt time.Time
	Err     error
}

// Command builds the ScummVM invocation for a game identifier.
func Command(opts Options, gameID string) *exec.Cmd {
	args := make([]string, 0, 2)
	if opts.Fullscreen {
		args = append(args, "--fullscreen")
	}
	args = append(args, gameID)

	cmd := exec.Command(opts.ExecPath, args...)
	cmd.Env = os.Environ()
	// keep ScummVM's own output visible for debugging
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Launch starts ScummVM with the given game and returns as soon as the
// process is running. A goroutine waits for the process to end and then
// calls done with the session result; UI callers marshal that back onto the
// interface thread themselves. Start failures (missing executable) are
// returned synchronously.
func Launch(opts Options, gameID string, done func(Result)) error {
	cmd := Command(opts, gameID)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrLaunchFailed, err)
	}
	log.Info().Str("game", gameID).Str("exec", opts.ExecPath).Msg("launched")

	go func() {
		waitErr := cmd.Wait()
		res := Result{
			GameID:  gameID,
			Played:  time.Since(start),
			EndedAt: time.Now(),
		}
		if waitErr != nil && res.Played < graceWindow {
			res.Err = fmt.Errorf("%w: scummvm exited immediately: %v", ErrLaunchFailed, waitErr)
		}
		if done != nil {
			done(res)
		}
	}()
	return nil
}
