// Package record writes and reads game records. A record is plain text with
// one token per line:
//
//	GAME
//	<prefix>
//	PLAYERS
//	<n>
//	PLAYER        (n times)
//	<index>
//	<agent name>
//	<agent config>
//	INIT
//	<state>
//	STEP          (once per turn)
//	<player>
//	<action>
//	<state>
//	SCORE
//	<score>       (n times)
package record

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const (
	tagGame    = "GAME"
	tagPlayers = "PLAYERS"
	tagPlayer  = "PLAYER"
	tagInit    = "INIT"
	tagStep    = "STEP"
	tagScore   = "SCORE"
)

// TimeLayout formats the time part of record file names.
const TimeLayout = "20060102_15_04_05"

type Player struct {
	Index  int
	Agent  string
	Config string
}

type Step struct {
	Player int
	Action string
	State  string
}

// Game is a parsed record.
type Game struct {
	Prefix  string
	Players []Player
	Init    string
	Steps   []Step
	Scores  []int64
}

// Writer writes a record section by section. The first write error is kept
// and returned by every later call.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) lines(lines ...any) error {
	for _, line := range lines {
		if w.err != nil {
			return w.err
		}
		_, w.err = fmt.Fprintln(w.w, line)
	}
	return w.err
}

// Header writes the GAME and PLAYER sections.
func (w *Writer) Header(prefix string, players []Player) error {
	w.lines(tagGame, prefix, tagPlayers, len(players))
	for _, p := range players {
		w.lines(tagPlayer, p.Index, p.Agent, p.Config)
	}
	return w.err
}

func (w *Writer) Init(state string) error {
	return w.lines(tagInit, state)
}

func (w *Writer) Step(step Step) error {
	return w.lines(tagStep, step.Player, step.Action, step.State)
}

func (w *Writer) Score(scores []int64) error {
	w.lines(tagScore)
	for _, score := range scores {
		w.lines(score)
	}
	return w.err
}

func (w *Writer) Err() error {
	return w.err
}

// FileName returns the path of a record of a game started at t.
func FileName(dir, prefix string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.txt", prefix, t.Format(TimeLayout)))
}

// Create creates the record file of a game started at t. The directory is not
// created: a missing directory is reported so the caller can decide to play
// without a record.
func Create(dir, prefix string, t time.Time) (*os.File, error) {
	f, err := os.Create(FileName(dir, prefix, t))
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}
	return f, nil
}
