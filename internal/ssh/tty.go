// Package ssh adapts gliderlabs SSH sessions into tcell screens.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty over one SSH channel. Each connected client gets
// its own Tty and screen.
type Tty struct {
	rw     io.ReadWriteCloser
	mu     sync.Mutex
	window gossh.Window
	winCh  <-chan gossh.Window
	cb     func() // resize callback registered by tcell
	once   sync.Once
}

// NewTty wraps an SSH channel as a tcell Tty. win is the initial window
// size; winCh delivers later resizes and is closed with the session.
func NewTty(rw io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window) *Tty {
	return &Tty{rw: rw, window: win, winCh: winCh}
}

// Read reads raw keyboard bytes from the client.
func (t *Tty) Read(b []byte) (int, error) { return t.rw.Read(b) }

// Write sends rendered output to the client.
func (t *Tty) Write(b []byte) (int, error) { return t.rw.Write(b) }

// Close closes the SSH channel.
func (t *Tty) Close() error { return t.rw.Close() }

// Start is a no-op; the channel is already open.
func (t *Tty) Start() error { return nil }

// Stop is a no-op; the server handler owns the channel.
func (t *Tty) Stop() error { return nil }

// Drain is a no-op; SSH writes are not buffered here.
func (t *Tty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers the callback run on every window change. The
// first call also starts draining the window channel for the life of the
// session; later calls only swap the callback.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.once.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				localCb := t.cb
				t.mu.Unlock()
				if localCb != nil {
					localCb()
				}
			}
		}()
	})
}
