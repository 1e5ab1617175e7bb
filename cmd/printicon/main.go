// printicon generates the print agent's application icon: a stylized
// printer rendered at 16, 32, 48 and 256 px and packaged into a single
// multi-resolution assets/icon.ico.
// Usage: go run ./cmd/printicon (no arguments)
package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/Mavwarf/printicon/internal/icon"
	"github.com/Mavwarf/printicon/internal/icopack"
	"github.com/Mavwarf/printicon/internal/paths"
)

// sizes covers the resolutions Windows shells pick from: tray and title
// bar (16), taskbar (32), explorer lists (48) and large tiles (256).
var sizes = []int{16, 32, 48, 256}

func main() {
	if err := run(os.Stdout, paths.OutputPath(), sizes, icon.Default()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders one frame per size, in order, and packages them at outPath.
func run(w io.Writer, outPath string, sizes []int, pal icon.Palette) error {
	fmt.Fprintln(w, "Creating printer icon...")

	frames := make([]image.Image, 0, len(sizes))
	for _, s := range sizes {
		fmt.Fprintf(w, "  Generating %dx%d icon...\n", s, s)
		img, err := icon.Draw(s, pal)
		if err != nil {
			return fmt.Errorf("rendering %dx%d: %w", s, s, err)
		}
		frames = append(frames, img)
	}

	fmt.Fprintf(w, "\nSaving to %s...\n", outPath)
	if err := icopack.Write(outPath, frames); err != nil {
		return err
	}

	fmt.Fprintln(w, "Icon created successfully!")
	fmt.Fprintf(w, "  Location: %s\n", outPath)
	fmt.Fprintf(w, "  Sizes: %s\n", sizeList(sizes))
	return nil
}

// sizeList formats sizes as "16x16, 32x32, ...".
func sizeList(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = fmt.Sprintf("%dx%d", s, s)
	}
	return strings.Join(parts, ", ")
}
