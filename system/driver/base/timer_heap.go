// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

// timerHeap is a min-heap of timer entries ordered by due time,
// for container/heap.
type timerHeap []*timerEntry

func (th timerHeap) Len() int { return len(th) }

func (th timerHeap) Less(i, j int) bool { return th[i].due.Before(th[j].due) }

func (th timerHeap) Swap(i, j int) {
	th[i], th[j] = th[j], th[i]
	th[i].index = i
	th[j].index = j
}

func (th *timerHeap) Push(x any) {
	te := x.(*timerEntry)
	te.index = len(*th)
	*th = append(*th, te)
}

func (th *timerHeap) Pop() any {
	old := *th
	n := len(old)
	te := old[n-1]
	old[n-1] = nil
	*th = old[:n-1]
	return te
}
