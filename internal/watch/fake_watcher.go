package watch

// FakeWatcher is a WatcherIface implementation for tests.
// Call Send() to simulate a file system event.
type FakeWatcher struct {
	ch   chan struct{}
	errs chan error
}

// compile-time check
var _ WatcherIface = (*FakeWatcher)(nil)

// NewFakeWatcher creates a FakeWatcher with a buffered channel.
func NewFakeWatcher() *FakeWatcher {
	return &FakeWatcher{ch: make(chan struct{}, 16), errs: make(chan error, 16)}
}

// Events returns the channel on which change signals are delivered.
func (f *FakeWatcher) Events() <-chan struct{} { return f.ch }

// Errors returns the channel on which watch failures are delivered.
func (f *FakeWatcher) Errors() <-chan error { return f.errs }

// Close closes both channels.
func (f *FakeWatcher) Close() {
	close(f.ch)
	close(f.errs)
}

// Send pushes a change signal into the events channel.
func (f *FakeWatcher) Send() { f.ch <- struct{}{} }

// SendError pushes a watch failure into the errors channel.
func (f *FakeWatcher) SendError(err error) { f.errs <- err }
