package audio

// Playback tracks the user's play/pause intent. Every toggle bumps a
// generation so that an asynchronous start result can be matched against the
// intent that was current when it was requested.
type Playback struct {
	playing bool
	gen     uint64
}

// Playing reports the current intent.
func (p *Playback) Playing() bool {
	return p.playing
}

// Generation returns the generation of the latest toggle.
func (p *Playback) Generation() uint64 {
	return p.gen
}

// Toggle flips the intent and returns the new intent and its generation.
func (p *Playback) Toggle() (play bool, gen uint64) {
	p.playing = !p.playing
	p.gen++
	return p.playing, p.gen
}

// Stop forces the intent to paused. It reports whether the intent changed.
func (p *Playback) Stop() bool {
	if !p.playing {
		return false
	}
	p.playing = false
	p.gen++
	return true
}

// Resolve applies the outcome of the start requested at gen. A failed start
// for the current generation reverts the intent to paused. It returns true
// when the caller must pause the player again: the start succeeded but the
// intent has since become paused.
func (p *Playback) Resolve(gen uint64, err error) (repause bool) {
	if gen != p.gen {
		return err == nil && !p.playing
	}
	if err != nil {
		p.playing = false
		return false
	}
	return !p.playing
}

// End records that the playback started at gen stopped on its own. It
// reverts the intent to paused and reports true only when gen is still
// current.
func (p *Playback) End(gen uint64) bool {
	if gen != p.gen || !p.playing {
		return false
	}
	p.playing = false
	p.gen++
	return true
}
