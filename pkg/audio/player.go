// Package audio plays the ambient background loop for the journal editor.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrNoPlayer is returned when no usable player command is found.
	ErrNoPlayer = errors.New("audio: no player available")
	// ErrNoResource is returned when the audio file cannot be read.
	ErrNoResource = errors.New("audio: resource not found")
	// ErrClosed is returned by Play after Close.
	ErrClosed = errors.New("audio: player closed")
)

// Player starts and stops looping playback of one resource.
type Player interface {
	// Play starts looping playback. It returns once playback has started or
	// failed to start. Calling Play while playing is a no-op.
	Play(ctx context.Context) error
	// Pause stops playback. It is synchronous and safe to call at any time.
	Pause()
	// Done is closed when the playback started by the last successful Play
	// ends, either paused or abandoned. It is already closed when idle.
	Done() <-chan struct{}
	// Close pauses and makes every later Play fail with ErrClosed.
	Close()
}

// fileToken is replaced by the resource path in command templates.
const fileToken = "{file}"

const (
	// minRunTime is the shortest run that counts as a healthy loop. Restarts
	// after shorter runs are delayed until minRunTime has passed.
	minRunTime = time.Second
	// maxFastExits consecutive short runs abandon the loop.
	maxFastExits = 3
)

// knownPlayers are tried in order when no command is configured.
var knownPlayers = [][]string{
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", fileToken},
	{"mpv", "--no-video", "--really-quiet", fileToken},
	{"afplay", fileToken},
	{"paplay", fileToken},
}

// ExecPlayer loops an external player process over a file.
type ExecPlayer struct {
	file    string
	command []string
	log     zerolog.Logger

	lookPath     func(string) (string, error)
	minRun       time.Duration
	maxFastExits int

	mu     sync.Mutex
	closed bool
	cancel context.CancelFunc
	done   chan struct{}
}

// NewExecPlayer returns a player for file. An empty command selects the first
// known player found on PATH when Play is called.
func NewExecPlayer(file string, command []string, log zerolog.Logger) *ExecPlayer {
	return &ExecPlayer{
		file:     file,
		command:  command,
		log:      log.With().Str("component", "audio").Logger(),
		lookPath:     exec.LookPath,
		minRun:       minRunTime,
		maxFastExits: maxFastExits,
	}
}

// Play implements Player.
func (p *ExecPlayer) Play(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if p.running() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(p.file); err != nil {
		return fmt.Errorf("%w: %s", ErrNoResource, p.file)
	}
	argv, err := p.argv()
	if err != nil {
		return err
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(loopCtx, argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		cancel()
		return fmt.Errorf("audio: start %s: %w", argv[0], err)
	}

	if p.cancel != nil {
		p.cancel()
	}
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done
	go p.loop(loopCtx, cmd, argv, done)
	p.log.Debug().Str("player", argv[0]).Str("file", p.file).Msg("playback started")
	return nil
}

// Pause implements Player.
func (p *ExecPlayer) Pause() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	p.log.Debug().Msg("playback paused")
}

// Done implements Player.
func (p *ExecPlayer) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done == nil {
		idle := make(chan struct{})
		close(idle)
		return idle
	}
	return p.done
}

// Close implements Player.
func (p *ExecPlayer) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.Pause()
}

// Playing reports whether the player loop is alive.
func (p *ExecPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running()
}

func (p *ExecPlayer) running() bool {
	if p.done == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// loop waits for the current process and restarts it until ctx is cancelled.
// A run shorter than minRun that fails ends the loop at once; short clean
// runs are restarted no faster than once per minRun, up to maxFastExits in a
// row.
func (p *ExecPlayer) loop(ctx context.Context, cmd *exec.Cmd, argv []string, done chan struct{}) {
	defer close(done)
	log := p.log.With().Str("player", argv[0]).Logger()
	fast := 0
	for {
		started := time.Now()
		err := cmd.Wait()
		if ctx.Err() != nil {
			return
		}
		ran := time.Since(started)
		if ran >= p.minRun {
			fast = 0
		} else {
			if err != nil {
				log.Error().Err(err).Msg("player exited immediately, giving up")
				return
			}
			fast++
			if fast >= p.maxFastExits {
				log.Error().Int("exits", fast).Dur("ran", ran).Msg("player keeps exiting immediately, giving up")
				return
			}
			wait := time.NewTimer(p.minRun - ran)
			select {
			case <-ctx.Done():
				wait.Stop()
				return
			case <-wait.C:
			}
		}
		cmd = exec.CommandContext(ctx, argv[0], argv[1:]...)
		if err := cmd.Start(); err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error().Err(err).Msg("player restart failed")
			return
		}
	}
}

func (p *ExecPlayer) argv() ([]string, error) {
	candidates := knownPlayers
	if len(p.command) > 0 {
		candidates = [][]string{p.command}
	}
	for _, tmpl := range candidates {
		if _, err := p.lookPath(tmpl[0]); err != nil {
			continue
		}
		argv := make([]string, len(tmpl))
		for i, arg := range tmpl {
			argv[i] = strings.ReplaceAll(arg, fileToken, p.file)
		}
		return argv, nil
	}
	return nil, ErrNoPlayer
}
