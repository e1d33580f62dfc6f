package tui

// sparkBlocks maps values 0..7 to Unicode block elements.
var sparkBlocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// history keeps the most recent percentage samples, oldest first.
type history struct {
	limit   int
	samples []float64
}

func newHistory(limit int) *history {
	if limit <= 0 {
		limit = 1
	}
	return &history{limit: limit, samples: make([]float64, 0, limit)}
}

// Push appends v, dropping the oldest sample when full.
func (h *history) Push(v float64) {
	if len(h.samples) == h.limit {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:h.limit-1]
	}
	h.samples = append(h.samples, v)
}

// Last returns the newest sample, or 0 when empty.
func (h *history) Last() float64 {
	if len(h.samples) == 0 {
		return 0
	}
	return h.samples[len(h.samples)-1]
}

// Sparkline renders the samples (0..100) as block characters.
func (h *history) Sparkline() string {
	runes := make([]rune, len(h.samples))
	for i, v := range h.samples {
		v = min(max(v, 0), 100)
		runes[i] = sparkBlocks[min(int(v/100*7), 7)]
	}
	return string(runes)
}
