// Package clipboard provides cross-platform clipboard support for
// copying conversion results out of the CLI and TUI.
package clipboard

import (
	"os/exec"
	"runtime"
	"strings"
)

// command picks the platform's clipboard writer.
func command() *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy")
	case "windows":
		return exec.Command("cmd", "/c", "clip")
	default:
		// Linux and the rest: xclip, falling back to xsel.
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard")
		}
		return exec.Command("xsel", "--clipboard", "--input")
	}
}

// Write copies text to the system clipboard.
func Write(text string) error {
	cmd := command()
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available checks if clipboard functionality is available.
func Available() bool {
	switch runtime.GOOS {
	case "darwin":
		_, err := exec.LookPath("pbcopy")
		return err == nil
	case "windows":
		return true // clip ships with Windows
	default:
		if _, err := exec.LookPath("xclip"); err == nil {
			return true
		}
		_, err := exec.LookPath("xsel")
		return err == nil
	}
}
