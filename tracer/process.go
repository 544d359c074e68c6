package tracer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os/exec"

	"github.com/katalvlaran/legion/addr"
)

// ProcessRunner traces a target binary by running it as a real subprocess:
// the input is written to stdin, and stderr is parsed as a packed stream of
// little-endian uint64 basic-block addresses.
type ProcessRunner struct {
	binary string
	args   []string
}

// NewProcessRunner returns a ProcessRunner that invokes binary with the
// given fixed argument list on every Trace call; only stdin varies.
func NewProcessRunner(binary string, args ...string) *ProcessRunner {
	return &ProcessRunner{binary: binary, args: args}
}

// Trace implements TraceRunner.
func (r *ProcessRunner) Trace(input []byte) (Result, error) {
	cmd := exec.Command(r.binary, r.args...)
	cmd.Stdin = bytes.NewReader(input)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrSpawn, err)
	}

	bugFound := false
	if err := cmd.Wait(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return Result{}, fmt.Errorf("%w: %v", ErrWait, err)
		}
		bugFound = exitErr.ExitCode() == BugExitStatus
	}

	path, err := unpackPath(stderr.Bytes())
	if err != nil {
		return Result{}, err
	}
	return Result{Path: path, BugFound: bugFound}, nil
}

// unpackPath decodes a stderr byte stream into an addr.Path: a packed
// sequence of 8-byte words, little-endian.
func unpackPath(raw []byte) (addr.Path, error) {
	if len(raw)%8 != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrMisalignedTrace, len(raw))
	}
	path := make(addr.Path, 0, len(raw)/8)
	for i := 0; i < len(raw); i += 8 {
		v := binary.LittleEndian.Uint64(raw[i : i+8])
		path = append(path, addr.Address(v))
	}
	return path, nil
}
