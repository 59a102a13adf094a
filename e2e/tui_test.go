//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

// TUITestFramework drives the typetrainer binary inside a PTY
type TUITestFramework struct {
	t    *testing.T
	pty  *os.File
	cmd  *exec.Cmd
	home string

	mu     sync.Mutex
	output strings.Builder
	done   chan error
}

// NewTUITest creates a new TUI test framework instance
func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{t: t}
}

// StartApp launches the application in a PTY with an isolated home so the
// user's config and log are never touched.
func (tf *TUITestFramework) StartApp(configTOML string) error {
	home, err := os.MkdirTemp("", "typetrainer-test-*")
	if err != nil {
		return err
	}
	tf.home = home

	configHome := filepath.Join(home, "config")
	if configTOML != "" {
		dir := filepath.Join(configHome, "typetrainer")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(configTOML), 0644); err != nil {
			return err
		}
	}

	tf.cmd = exec.Command(binPath)
	tf.cmd.Env = append(os.Environ(),
		"HOME="+home,
		"XDG_CONFIG_HOME="+configHome,
		"XDG_CACHE_HOME="+filepath.Join(home, "cache"),
		"TERM=xterm-256color",
	)

	f, err := pty.StartWithSize(tf.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}
	tf.pty = f

	go tf.readLoop()

	tf.done = make(chan error, 1)
	go func() {
		tf.done <- tf.cmd.Wait()
	}()
	return nil
}

func (tf *TUITestFramework) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := tf.pty.Read(buf)
		if n > 0 {
			tf.mu.Lock()
			tf.output.Write(buf[:n])
			tf.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// SendKeys sends keystrokes to the application
func (tf *TUITestFramework) SendKeys(keys string) error {
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// SendEnter sends an Enter key
func (tf *TUITestFramework) SendEnter() error {
	return tf.SendKeys("\r")
}

// SendEsc sends an Escape key
func (tf *TUITestFramework) SendEsc() error {
	return tf.SendKeys("\x1b")
}

// SendCtrlC sends Ctrl+C
func (tf *TUITestFramework) SendCtrlC() error {
	return tf.SendKeys("\x03")
}

// Snapshot returns everything printed so far with escape sequences removed
func (tf *TUITestFramework) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return ansiPattern.ReplaceAllString(tf.output.String(), "")
}

// ResetOutput forgets output captured so far
func (tf *TUITestFramework) ResetOutput() {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	tf.output.Reset()
}

// SeePlain waits for text to appear in the output
func (tf *TUITestFramework) SeePlain(text string) bool {
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(tf.Snapshot(), text) {
			return true
		}
		time.Sleep(50 * time.Millisecond)
	}
	tf.t.Logf("did not see %q; tail:\n%s", text, tf.tail(2048))
	return false
}

// WaitExit waits for the process to exit and returns its exit error
func (tf *TUITestFramework) WaitExit(timeout time.Duration) (bool, error) {
	select {
	case err := <-tf.done:
		return true, err
	case <-time.After(timeout):
		return false, nil
	}
}

func (tf *TUITestFramework) tail(n int) string {
	out := tf.Snapshot()
	if len(out) > n {
		out = out[len(out)-n:]
	}
	return out
}

// Cleanup closes the PTY and terminates the application
func (tf *TUITestFramework) Cleanup() {
	if tf.cmd != nil && tf.cmd.Process != nil {
		tf.cmd.Process.Kill() // already exited is fine
		tf.WaitExit(time.Second)
	}
	if tf.pty != nil {
		tf.pty.Close()
	}
	if tf.home != "" {
		os.RemoveAll(tf.home)
	}
}
