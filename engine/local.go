package engine

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"alphaya/experiments/metrics"
	"alphaya/game"
	"alphaya/record"
)

// Engine plays one game between agents in the same process.
type Engine[S game.State[S, A], A game.Action] struct {
	desc   *game.Descriptor[S, A]
	seats  []Seat[S, A]
	in     io.Reader
	out    io.Writer
	record *record.Writer
	max    int
	render bool
}

func LocalEngine[S game.State[S, A], A game.Action](desc *game.Descriptor[S, A], seats []Seat[S, A], options ...Option) *Engine[S, A] {
	if len(seats) != desc.Players() {
		panic(fmt.Sprintf("%s needs %d agents, got %d", desc.Name, desc.Players(), len(seats)))
	}
	s := settings{in: strings.NewReader(""), out: io.Discard, render: true}
	for _, option := range options {
		option(&s)
	}
	e := &Engine[S, A]{
		desc:   desc,
		seats:  seats,
		in:     s.in,
		out:    s.out,
		max:    s.maxTurns,
		render: s.render,
	}
	if s.record != nil {
		e.record = record.NewWriter(s.record)
	}
	return e
}

// Run plays from state until the game is over or the turn limit is reached.
// An agent error or an illegal move ends the game with an error. Record write
// errors are logged and do not stop the game.
func (e *Engine[S, A]) Run(state S) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartingPlayer: state.Player(), StartTime: time.Now()}
	moveMetrics := []metrics.MoveMetric{}
	e.writeHeader(state)

	fmt.Fprintln(e.out)
	fmt.Fprintln(e.out, "Game start!")
	e.show(state)
	log.Info().Str("game", e.desc.Name).Str("state", state.String()).Msg("game started")

	scores, over := state.Score()
	for turn := 1; !over; turn++ {
		if e.max > 0 && turn > e.max {
			log.Warn().Int("turns", e.max).Msg("turn limit reached, game stopped")
			break
		}
		player := state.Player()
		fmt.Fprintln(e.out)
		fmt.Fprintf(e.out, "It is %s's turn\n", e.desc.PlayerNames[player])

		move, err := e.seats[player].Agent.Move(state, e.in, e.out)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("agent of %s failed: %w", e.desc.PlayerNames[player], err)
		}
		if !game.Legal(state, move) {
			return gameMetric, moveMetrics, fmt.Errorf("illegal move %s by %s in %s", move, e.desc.PlayerNames[player], state)
		}

		mm := metrics.MoveMetric{Step: turn, Player: player, Action: move.String()}
		if r, ok := e.seats[player].Agent.(searchReporter); ok {
			mm.SearchMetric = r.LastMetrics()
		}
		moveMetrics = append(moveMetrics, mm)
		log.Debug().Int("turn", turn).Int("player", player).Str("move", move.String()).Msg("move played")

		state = state.Play(move)
		e.show(state)
		if e.record != nil {
			e.record.Step(record.Step{Player: player, Action: move.String(), State: state.String()})
		}
		scores, over = state.Score()
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if !over {
		e.checkRecord()
		return gameMetric, moveMetrics, nil
	}
	gameMetric.Scores = scores

	fmt.Fprintln(e.out)
	fmt.Fprintln(e.out, "Game over! Score:")
	for player, score := range scores {
		fmt.Fprintf(e.out, "Score of %s: %d\n", e.desc.PlayerNames[player], score)
	}
	fmt.Fprintln(e.out)
	if e.record != nil {
		e.record.Score(scores)
	}
	log.Info().Ints64("scores", scores).Int("moves", gameMetric.TotalMoves).Dur("duration", gameMetric.Duration).Msg("game over")

	e.checkRecord()
	return gameMetric, moveMetrics, nil
}

func (e *Engine[S, A]) writeHeader(state S) {
	if e.record == nil {
		return
	}
	players := make([]record.Player, len(e.seats))
	for i, seat := range e.seats {
		players[i] = record.Player{Index: i, Agent: seat.Name, Config: seat.Config}
	}
	e.record.Header(e.desc.RecordPrefix, players)
	e.record.Init(state.String())
}

func (e *Engine[S, A]) show(state S) {
	if !e.render || e.desc.Render == nil {
		return
	}
	fmt.Fprintln(e.out)
	e.desc.Render(e.out, state)
}

func (e *Engine[S, A]) checkRecord() {
	if e.record != nil && e.record.Err() != nil {
		log.Error().Err(e.record.Err()).Msg("failed to write game record")
	}
}
