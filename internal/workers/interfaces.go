// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to spawn goroutines internally and return
// promptly; Stop signals them to wind down and blocks until they have.
type Worker interface {
	Run()
	Stop()
}

// WorkerFunc adapts a pair of plain functions to the Worker interface.
type WorkerFunc struct {
	RunFunc  func()
	StopFunc func()
}

func (w WorkerFunc) Run() {
	if w.RunFunc != nil {
		w.RunFunc()
	}
}

func (w WorkerFunc) Stop() {
	if w.StopFunc != nil {
		w.StopFunc()
	}
}
