// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/fwojciec/commitgen"
)

// Ensure PBCopy implements the Clipboard interface.
var _ commitgen.Clipboard = (*PBCopy)(nil)

// PBCopy implements Clipboard using the macOS pbcopy command.
type PBCopy struct{}

// NewPBCopy returns a new PBCopy clipboard.
func NewPBCopy() *PBCopy {
	return &PBCopy{}
}

// Copy writes content to the system clipboard using pbcopy.
func (p *PBCopy) Copy(content string) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(content)
	return cmd.Run()
}

// Ensure XClip implements the Clipboard interface.
var _ commitgen.Clipboard = (*XClip)(nil)

// XClip implements Clipboard using the Linux xclip command.
type XClip struct{}

// NewXClip returns a new XClip clipboard.
func NewXClip() *XClip {
	return &XClip{}
}

// Copy writes content to the X selection clipboard using xclip.
func (x *XClip) Copy(content string) error {
	cmd := exec.Command("xclip", "-selection", "clipboard")
	cmd.Stdin = strings.NewReader(content)
	return cmd.Run()
}

// System returns the clipboard for the current platform.
func System() commitgen.Clipboard {
	if runtime.GOOS == "darwin" {
		return NewPBCopy()
	}
	return NewXClip()
}
