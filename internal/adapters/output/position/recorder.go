package position

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const DefaultBinary = "position"

// Recorder shells out to the position CLI. The tool owns its storage and any
// dedup/history; this adapter only reports whether the add succeeded.
type Recorder struct {
	binary string
}

func NewRecorder(binary string) *Recorder {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Recorder{binary: binary}
}

func (r *Recorder) Record(ctx context.Context, name, lat, lng, label string) error {
	cmd := exec.CommandContext(ctx, r.binary, "add", name,
		"--lat", lat,
		"--lng", lng,
		"--label", label,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%s exited with status %d: %s",
			r.binary, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
	}
	// LookPath failures (bare name) and fork/exec failures (explicit path)
	// both mean the binary is not runnable.
	var execErr *exec.Error
	if errors.As(err, &execErr) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("position binary not found: %s", r.binary)
	}
	return err
}
