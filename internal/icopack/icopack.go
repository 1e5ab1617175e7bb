// Package icopack encodes rendered icon frames into a single
// multi-resolution ICO container on disk. Consumers decode individual
// frames back out by their (width, height) pair.
package icopack

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/Mavwarf/printicon/internal/paths"
)

// ErrNoFrames is returned when there is nothing to package.
var ErrNoFrames = errors.New("icopack: no frames to package")

// Write encodes frames, in order, into one ICO container at path. The
// container is built in memory and written atomically, so a concurrent
// reader never observes a partial icon and a failed run leaves any
// previous artifact untouched.
func Write(path string, frames []image.Image) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, frames); err != nil {
		return fmt.Errorf("encoding icon: %w", err)
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
