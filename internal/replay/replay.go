// Package replay records the input of a run and replays it headless.
//
// A game run is fully determined by its seed and its input frames, so a
// recording stores only those, run-length encoded, as zstd-compressed YAML.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/carrot-rush/internal/core"
)

// Version is the current recording format.
const Version = 1

// ErrMismatch is returned by Verify when a replay does not reproduce the recorded score.
var ErrMismatch = errors.New("replay: result mismatch")

// Pointer is the recorded pointer state of a frame.
type Pointer struct {
	Down bool    `yaml:"d,omitempty"`
	Up   bool    `yaml:"u,omitempty"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Frame is Count consecutive ticks with identical input.
type Frame struct {
	Mask    uint32   `yaml:"m"`
	Count   int      `yaml:"n"`
	Pointer *Pointer `yaml:"p,omitempty"`
}

func (f Frame) input() core.InputFrame {
	var p core.Pointer
	if f.Pointer != nil {
		p = core.Pointer{Down: f.Pointer.Down, Up: f.Pointer.Up, X: f.Pointer.X, Y: f.Pointer.Y}
	}
	return core.FrameFromMask(f.Mask, p)
}

// Recording is one run from its first tick to game over.
type Recording struct {
	Version    int     `yaml:"version"`
	GameID     string  `yaml:"game"`
	Difficulty string  `yaml:"difficulty,omitempty"`
	Seed       int64   `yaml:"seed"`
	TickRate   int     `yaml:"tick_rate"`
	Ticks      int     `yaml:"ticks"`
	Score      int     `yaml:"score"`
	Victory    bool    `yaml:"victory"`
	Frames     []Frame `yaml:"frames"`
}

// Inputs expands the run-length encoded frames.
func (r Recording) Inputs() []core.InputFrame {
	out := make([]core.InputFrame, 0, r.Ticks)
	for _, f := range r.Frames {
		in := f.input()
		for range f.Count {
			out = append(out, in)
		}
	}
	return out
}

// Recorder captures the frames of the current run.
type Recorder struct {
	gameID     string
	difficulty string
	tickRate   int

	rec    Recording
	active bool
	last   core.InputFrame
}

// NewRecorder creates a recorder for one game.
func NewRecorder(gameID, difficulty string, tickRate int) *Recorder {
	return &Recorder{gameID: gameID, difficulty: difficulty, tickRate: tickRate}
}

// Active reports whether a run is being recorded.
func (r *Recorder) Active() bool {
	return r.active
}

// Begin starts a new recording, dropping any unfinished one.
func (r *Recorder) Begin(seed int64) {
	r.rec = Recording{
		Version:    Version,
		GameID:     r.gameID,
		Difficulty: r.difficulty,
		Seed:       seed,
		TickRate:   r.tickRate,
	}
	r.active = true
}

// Record appends one frame. Identical consecutive frames share an entry.
func (r *Recorder) Record(in core.InputFrame) {
	if !r.active {
		return
	}
	r.rec.Ticks++

	if n := len(r.rec.Frames); n > 0 && in == r.last {
		r.rec.Frames[n-1].Count++
		return
	}
	r.last = in

	f := Frame{Mask: in.Mask(), Count: 1}
	if p := in.Pointer; p != (core.Pointer{}) {
		f.Pointer = &Pointer{Down: p.Down, Up: p.Up, X: p.X, Y: p.Y}
	}
	r.rec.Frames = append(r.rec.Frames, f)
}

// Finish stops recording and returns the run.
func (r *Recorder) Finish(st core.GameState) Recording {
	r.active = false
	rec := r.rec
	rec.Score = st.Score
	rec.Victory = st.Victory
	r.rec = Recording{}
	return rec
}

// Observe feeds the recorder one stepped frame together with the result of
// the step and the seed of the running game. A start or restart begins a new
// recording; game over finishes it and returns it with done set.
func (r *Recorder) Observe(in core.InputFrame, res core.StepResult, seed int64) (rec Recording, done bool) {
	switch {
	case res.Has(core.NoticeStart) || res.Has(core.NoticeRestart):
		r.Begin(seed)
	case r.active:
		r.Record(in)
	}

	if res.Has(core.NoticeGameOver) && r.active {
		return r.Finish(res.State), true
	}
	return Recording{}, false
}

// Encode serializes a recording as zstd-compressed YAML.
func Encode(rec Recording) ([]byte, error) {
	raw, err := yaml.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("replay: failed to marshal recording: %w", err)
	}

	compressed := bytes.NewBuffer(nil)
	w, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, fmt.Errorf("replay: failed to create zstd writer: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return nil, fmt.Errorf("replay: failed to compress recording: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("replay: failed to close zstd writer: %w", err)
	}
	return compressed.Bytes(), nil
}

// Decode parses the output of Encode.
func Decode(data []byte) (Recording, error) {
	r, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return Recording{}, fmt.Errorf("replay: failed to create zstd reader: %w", err)
	}
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		return Recording{}, fmt.Errorf("replay: failed to decompress recording: %w", err)
	}

	var rec Recording
	if err := yaml.Unmarshal(raw, &rec); err != nil {
		return Recording{}, fmt.Errorf("replay: failed to parse recording: %w", err)
	}
	if rec.Version != Version {
		return Recording{}, fmt.Errorf("replay: unsupported version %d", rec.Version)
	}
	return rec, nil
}

// Simulator is the part of a game needed to replay it.
type Simulator interface {
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
}

// Play resets sim with the recorded seed, leaves the intro and feeds every
// recorded frame. It returns the final state.
func Play(sim Simulator, rec Recording) core.GameState {
	cfg := core.DefaultConfig()
	cfg.Seed = rec.Seed
	if rec.TickRate > 0 {
		cfg.TickRate = rec.TickRate
	}
	sim.Reset(cfg)

	start := core.NewInputFrame()
	start.Set(core.ActionConfirm)
	st := sim.Step(start).State

	for _, in := range rec.Inputs() {
		st = sim.Step(in).State
	}
	return st
}

// Verify replays rec and checks that it ends the same way.
func Verify(sim Simulator, rec Recording) error {
	st := Play(sim, rec)
	if !st.GameOver || st.Score != rec.Score || st.Victory != rec.Victory {
		return fmt.Errorf("%w: recorded score %d (victory %v), replayed %d (victory %v, game over %v)",
			ErrMismatch, rec.Score, rec.Victory, st.Score, st.Victory, st.GameOver)
	}
	return nil
}
