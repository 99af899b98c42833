package audio

import (
	"errors"
	"testing"
)

func TestPlaybackToggleBumpsGeneration(t *testing.T) {
	var p Playback
	play, gen := p.Toggle()
	if !play || gen != 1 {
		t.Fatalf("expected play intent at gen 1, got %v %d", play, gen)
	}
	play, gen = p.Toggle()
	if play || gen != 2 {
		t.Fatalf("expected pause intent at gen 2, got %v %d", play, gen)
	}
}

func TestPlaybackResolveFailureReverts(t *testing.T) {
	var p Playback
	_, gen := p.Toggle()
	if repause := p.Resolve(gen, errors.New("autoplay blocked")); repause {
		t.Fatalf("failed start should not ask for a pause")
	}
	if p.Playing() {
		t.Fatalf("failed start must revert intent to paused")
	}
}

func TestPlaybackResolveStaleSuccessAfterPause(t *testing.T) {
	var p Playback
	_, startGen := p.Toggle()
	p.Toggle() // paused before the start resolved

	if repause := p.Resolve(startGen, nil); !repause {
		t.Fatalf("stale success after pause must ask for a pause")
	}
	if p.Playing() {
		t.Fatalf("stale success must not flip the intent back on")
	}
}

func TestPlaybackResolveStaleFailureIgnored(t *testing.T) {
	var p Playback
	_, first := p.Toggle()
	p.Toggle()
	_, third := p.Toggle()

	if repause := p.Resolve(first, errors.New("late failure")); repause {
		t.Fatalf("stale failure should not ask for a pause")
	}
	if !p.Playing() {
		t.Fatalf("stale failure must not revert the newer play intent")
	}
	if repause := p.Resolve(third, nil); repause {
		t.Fatalf("current success while playing should not pause")
	}
}

func TestPlaybackStop(t *testing.T) {
	var p Playback
	if p.Stop() {
		t.Fatalf("stop while paused should report no change")
	}
	_, gen := p.Toggle()
	if !p.Stop() {
		t.Fatalf("stop while playing should report a change")
	}
	if !p.Resolve(gen, nil) {
		t.Fatalf("start resolving after stop must ask for a pause")
	}
}

func TestPlaybackEndRevertsCurrentGeneration(t *testing.T) {
	var p Playback
	_, gen := p.Toggle()
	p.Resolve(gen, nil)
	if !p.End(gen) {
		t.Fatalf("expected the current playback to end")
	}
	if p.Playing() {
		t.Fatalf("expected intent paused after the loop ended")
	}
	if play, _ := p.Toggle(); !play {
		t.Fatalf("expected the next toggle to start playback again")
	}
}

func TestPlaybackEndIgnoresStaleGeneration(t *testing.T) {
	var p Playback
	_, old := p.Toggle()
	p.Toggle()
	_, gen := p.Toggle()
	if p.End(old) {
		t.Fatalf("stale end must be ignored")
	}
	if !p.Playing() || p.Generation() != gen {
		t.Fatalf("expected intent untouched, got playing=%v gen=%d", p.Playing(), p.Generation())
	}
}
