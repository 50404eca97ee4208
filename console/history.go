package console

import (
	"github.com/seqsense/glmat/mat"
)

type history struct {
	entries    []mat.Mat4
	maxHistory int
}

func newHistory(n int) *history {
	h := &history{}
	h.SetMaxHistory(n)
	return h
}

func (h *history) MaxHistory() int {
	return h.maxHistory
}

func (h *history) SetMaxHistory(m int) {
	if m < 0 {
		m = 0
	}
	h.maxHistory = m
	if n := len(h.entries); n > m {
		h.entries = h.entries[n-m:]
	}
}

func (h *history) push(m mat.Mat4) {
	if h.maxHistory == 0 {
		return
	}
	h.entries = append(h.entries, m)
	if len(h.entries) > h.maxHistory {
		h.entries = h.entries[1:]
	}
}

func (h *history) pop() (mat.Mat4, bool) {
	n := len(h.entries)
	if n == 0 {
		return mat.Mat4{}, false
	}
	m := h.entries[n-1]
	h.entries = h.entries[:n-1]
	return m, true
}
