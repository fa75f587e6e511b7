package audio

// pullState buffers samples fetched from a pull generator. Frames are
// addressed by absolute index since the start of the slot; base is the
// absolute index of buf's first frame, so consumed frames can be dropped
// without disturbing the playback position.
type pullState struct {
	fn       PullFunc
	channels int

	base    int64
	buf     []float32
	scratch []float32
}

func newPullState(fn PullFunc, channels int) *pullState {
	return &pullState{
		fn:       fn,
		channels: channels,
	}
}

func (p *pullState) frames() int {
	return len(p.buf) / p.channels
}

// ensure fetches from the generator until frames up to maxIndex
// (inclusive) are buffered, requesting at least minBatch frames per
// call. A short return is reported as ErrBufferUnderrun; when fill is
// set the shortfall is zero-filled so playback can continue over the
// gap, otherwise the partial batch is kept for the next attempt.
func (p *pullState) ensure(maxIndex int64, minBatch int, fill bool) error {
	need := maxIndex + 1 - p.base - int64(p.frames())
	if need <= 0 {
		return nil
	}

	req := int(need)
	if req < minBatch {
		req = minBatch
	}

	want := req * p.channels
	if cap(p.scratch) < want {
		p.scratch = make([]float32, want)
	}
	scratch := p.scratch[:want]

	got := p.fn(scratch)
	if got < 0 {
		got = 0
	}
	if got > want {
		got = want
	}
	got -= got % p.channels

	p.buf = append(p.buf, scratch[:got]...)

	if got < want {
		if fill {
			clear(scratch[got:want])
			p.buf = append(p.buf, scratch[got:want]...)
		}

		return ErrBufferUnderrun
	}

	return nil
}

// frameAt reads one channel of the frame at absolute index idx. Indices
// before the buffer clamp to its first frame (the interpolation window
// reaches one frame behind the position); indices past the buffered end
// read as silence.
func (p *pullState) frameAt(idx int64, ch int) float32 {
	idx -= p.base
	if idx < 0 {
		idx = 0
	}

	if idx >= int64(p.frames()) {
		return 0
	}

	return p.buf[idx*int64(p.channels)+int64(ch)]
}

// compact drops buffered frames below absolute index keep.
func (p *pullState) compact(keep int64) {
	drop := keep - p.base
	if drop <= 0 {
		return
	}

	n := int(drop) * p.channels
	if n >= len(p.buf) {
		p.buf = p.buf[:0]
		p.base = keep
		return
	}

	copy(p.buf, p.buf[n:])
	p.buf = p.buf[:len(p.buf)-n]
	p.base = keep
}
