package workers

// Workers runs a fixed set of background workers as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers builds an aggregate over the given workers. Run starts them in
// the order given; Stop stops them in reverse.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
