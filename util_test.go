package typewriter_test

import (
	"sync"
	"time"

	typewriter "github.com/Azure/go-typewriter"
)

// frame is one observed surface state and the virtual time it appeared.
type frame struct {
	At   time.Duration
	Text string
}

type recorder struct {
	mu       sync.Mutex
	frames   []frame
	onChange func(frames int)
}

func newRecorder(surface *typewriter.BufferSurface, scheduler *typewriter.VirtualScheduler) *recorder {
	r := &recorder{}
	surface.OnChange(func(text string) {
		r.mu.Lock()
		r.frames = append(r.frames, frame{At: scheduler.Elapsed(), Text: text})
		count := len(r.frames)
		hook := r.onChange
		r.mu.Unlock()

		if hook != nil {
			hook(count)
		}
	})
	return r
}

func (r *recorder) Frames() []frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]frame{}, r.frames...)
}

func (r *recorder) Texts() []string {
	var texts []string
	for _, f := range r.Frames() {
		texts = append(texts, f.Text)
	}
	return texts
}

func (r *recorder) OnChange(fn func(frames int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

func newVirtualTypewriter(initial string, options ...typewriter.OptionPreparer) (*typewriter.Typewriter, *typewriter.BufferSurface, *typewriter.VirtualScheduler) {
	scheduler := typewriter.NewVirtualScheduler()
	surface := typewriter.NewBufferSurface(initial)
	tw := typewriter.New(surface, append([]typewriter.OptionPreparer{typewriter.WithScheduler(scheduler)}, options...)...)
	return tw, surface, scheduler
}
