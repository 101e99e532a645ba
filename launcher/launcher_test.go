package launcher

import (
	"errors"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestCommandArgs(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			"windowed",
			Options{ExecPath: "scummvm"},
			[]string{"scummvm", "monkey1"},
		},
		{
			"fullscreen",
			Options{ExecPath: "/usr/bin/scummvm", Fullscreen: true},
			[]string{"/usr/bin/scummvm", "--fullscreen", "monkey1"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := Command(tc.opts, "monkey1")
			if !reflect.DeepEqual(cmd.Args, tc.want) {
				t.Errorf("Args = %v, want %v", cmd.Args, tc.want)
			}
		})
	}
}

func TestLaunchMissingExecutable(t *testing.T) {
	opts := Options{ExecPath: filepath.Join(t.TempDir(), "no-such-scummvm")}
	err := Launch(opts, "monkey1", nil)
	if !errors.Is(err, ErrLaunchFailed) {
		t.Errorf("err = %v, want ErrLaunchFailed", err)
	}
}

func TestLaunchImmediateExitReportsFailure(t *testing.T) {
	falsePath, err := exec.LookPath("false")
	if err != nil {
		t.Skip("no false binary on this system")
	}

	results := make(chan Result, 1)
	if err := Launch(Options{ExecPath: falsePath}, "monkey1", func(r Result) {
		results <- r
	}); err != nil {
		t.Fatalf("Launch: %v", err)
	}

	select {
	case res := <-results:
		if !errors.Is(res.Err, ErrLaunchFailed) {
			t.Errorf("Result.Err = %v, want ErrLaunchFailed", res.Err)
		}
		if res.GameID != "monkey1" {
			t.Errorf("GameID = %q", res.GameID)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no result delivered")
	}
}

func TestLaunchCleanExitRecordsSession(t *testing.T) {
	truePath, err := exec.LookPath("true")
	if err != nil {
		t.Skip("no true binary on this system")
	}

	results := make(chan Result, 1)
	if err := Launch(Options{ExecPath: truePath}, "sky", func(r Result) {
		results <- r
	}); err != nil {
		t.Fatalf("Launch: %v", err)
	}

	select {
	case res := <-results:
		if res.Err != nil {
			t.Errorf("Result.Err = %v, want nil", res.Err)
		}
		if res.EndedAt.IsZero() || res.Played < 0 {
			t.Errorf("bad session bounds: %+v", res)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no result delivered")
	}
}
