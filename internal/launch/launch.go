// Package launch hands the terminal over to the command chosen in the UI.
package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// Shell runs the launch command.
const Shell = "/bin/sh"

// Argv returns the argument vector that runs command through the shell.
func Argv(command string) []string {
	return []string{Shell, "-c", command}
}

// Missing reports the programs command starts with that are not on PATH.
// Only sshpass and ssh are checked.
func Missing(command string) []string {
	var missing []string
	for _, f := range strings.Fields(command) {
		if f != "sshpass" && f != "ssh" {
			continue
		}
		if _, err := exec.LookPath(f); err != nil {
			missing = append(missing, f)
		}
		if f == "ssh" {
			break
		}
	}
	return missing
}

// Exec replaces the current process with the shell running command.
// It only returns on failure.
func Exec(command string) error {
	if strings.TrimSpace(command) == "" {
		return errors.New("empty command")
	}
	path, err := exec.LookPath(Shell)
	if err != nil {
		return fmt.Errorf("shell not found: %w", err)
	}
	if err := syscall.Exec(path, Argv(command), os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", Shell, err)
	}
	return nil
}
