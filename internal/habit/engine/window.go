package engine

import "trading-habit-engine/internal/entity"

// tradeWindow is a fixed-capacity FIFO ring of trades.
type tradeWindow struct {
	items []*entity.Trade
	start int
	size  int
}

func newTradeWindow(capacity int) *tradeWindow {
	if capacity < 1 {
		capacity = 1
	}
	return &tradeWindow{items: make([]*entity.Trade, capacity)}
}

// push appends t, evicting the oldest trade when full.
func (w *tradeWindow) push(t *entity.Trade) {
	idx := (w.start + w.size) % len(w.items)
	w.items[idx] = t
	if w.size < len(w.items) {
		w.size++
		return
	}
	w.start = (w.start + 1) % len(w.items)
}

func (w *tradeWindow) len() int {
	return w.size
}

// snapshot returns the trades oldest first.
func (w *tradeWindow) snapshot() []*entity.Trade {
	out := make([]*entity.Trade, 0, w.size)
	for i := 0; i < w.size; i++ {
		out = append(out, w.items[(w.start+i)%len(w.items)])
	}
	return out
}
