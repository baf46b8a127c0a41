//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package potd

// Progressor displays the completion of a long running operation
type Progressor interface {
	Show(percent float32)
	Stop()
}

// Progress counts completed items of a known total, and reports
// them to its Progressor from a goroutine of its own. A nil
// Progressor reports nothing.
type Progress struct {
	prog      Progressor
	completed chan struct{}
	done      chan struct{}
}

func NewProgress(prog Progressor, total int) (progress *Progress) {
	progress = &Progress{
		prog:      prog,
		completed: make(chan struct{}, total),
		done:      make(chan struct{}),
	}

	go progress.report(total)

	return
}

func (progress *Progress) report(total int) {
	defer close(progress.done)

	for count := 0; count < total; count++ {
		progress.show(float32(count) * 100.0 / float32(total))
		<-progress.completed
	}

	progress.show(100.0)

	if progress.prog != nil {
		progress.prog.Stop()
	}
}

func (progress *Progress) show(percent float32) {
	if progress.prog != nil {
		progress.prog.Show(percent)
	}
}

// Indicate marks one item as complete
func (progress *Progress) Indicate() {
	progress.completed <- struct{}{}
}

// Close waits for every item to be indicated
func (progress *Progress) Close() {
	<-progress.done
	close(progress.completed)
}
