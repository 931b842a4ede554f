package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"

	"alphaya/agent"
	"alphaya/engine"
	"alphaya/game"
	"alphaya/record"
)

// Console is the line based interface to play a game from a terminal.
type Console[S game.State[S, A], A game.Action] struct {
	desc     *game.Descriptor[S, A]
	in       *bufio.Reader
	out      io.Writer
	records  string
	registry []agent.Constructor[S, A]
	now      func() time.Time
}

func NewConsole[S game.State[S, A], A game.Action](desc *game.Descriptor[S, A], in io.Reader, out io.Writer, records string) *Console[S, A] {
	r, ok := in.(*bufio.Reader)
	if !ok {
		r = bufio.NewReader(in)
	}
	return &Console[S, A]{
		desc:     desc,
		in:       r,
		out:      out,
		records:  records,
		registry: agent.Registry[S, A](nil),
		now:      time.Now,
	}
}

// readLine returns the next line without its line ending. The last line of
// the input does not need one.
func (c *Console[S, A]) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ask prints prompt and reads an answer, falling back to def when the answer
// is empty. A non-empty def is shown in the prompt.
func (c *Console[S, A]) ask(prompt, def string) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s (default: %s)", prompt, def)
	}
	fmt.Fprintf(c.out, "%s: ", prompt)
	answer, err := c.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		answer = def
	}
	return answer, nil
}

// Run reads commands until ".exit" or the end of the input.
func (c *Console[S, A]) Run() error {
	out := termenv.NewOutput(c.out)
	fmt.Fprintln(c.out, out.String(fmt.Sprintf(`OK! Input ".play" and press Enter to play %s`, c.desc.Name)).Foreground(out.Color("2")))
	for {
		cmd, err := c.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch cmd {
		case ".play":
			if err := c.play(); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		case ".help":
			c.help()
		case ".exit":
			return nil
		case "..ping":
			fmt.Fprintln(c.out, "pong")
		case "..size":
			// bits of the canonical encoding, not of the in-memory State value
			fmt.Fprintln(c.out, c.desc.ByteCount*8)
		default:
			fmt.Fprintln(c.out)
			fmt.Fprintf(c.out, "Unknown command: %s\n", cmd)
			fmt.Fprintln(c.out, "Available commands are: .play .help .exit")
			fmt.Fprintln(c.out)
		}
	}
}

func (c *Console[S, A]) help() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, strings.TrimRight(c.desc.Help, "\n"))
	fmt.Fprintf(c.out, "Players: %d\n", c.desc.Players())
	for player, name := range c.desc.PlayerNames {
		fmt.Fprintf(c.out, "%d. %s\n", player+1, name)
	}
	fmt.Fprintln(c.out)
}

func (c *Console[S, A]) play() error {
	f, err := record.Create(c.records, c.desc.RecordPrefix, c.now())
	if err != nil {
		log.Debug().Err(err).Msg("playing without a record")
		fmt.Fprintf(c.out, "WARNING: folder %q not found, game will not be saved\n", c.records)
		for {
			fmt.Fprint(c.out, `Input "confirm" and press Enter to confirm this warning: `)
			confirm, err := c.readLine()
			if err != nil {
				return err
			}
			if confirm == "confirm" {
				break
			}
		}
	} else {
		defer f.Close()
	}

	text := c.desc.DefaultState
	if c.desc.CustomizeState {
		if text, err = c.ask("Please input game state", c.desc.DefaultState); err != nil {
			return err
		}
	}

	seats := make([]engine.Seat[S, A], c.desc.Players())
	for player := range seats {
		if seats[player], err = c.chooseAgent(player); err != nil {
			return err
		}
	}

	options := []engine.Option{engine.WithIO(c.in, c.out)}
	if f != nil {
		options = append(options, engine.WithRecord(f))
	}
	if _, _, err := engine.LocalEngine(c.desc, seats, options...).Run(c.desc.Init(text)); err != nil {
		return err
	}
	if f != nil {
		fmt.Fprintf(c.out, "Game record saved to %s\n", f.Name())
	}
	return nil
}

// chooseAgent asks for the agent of player until a known one is named. A
// player whose agent cannot be customized gets the default agent, unless
// that is unknown.
func (c *Console[S, A]) chooseAgent(player int) (engine.Seat[S, A], error) {
	fmt.Fprintln(c.out)
	agent.PrintRegistry(c.out, c.registry)

	name := c.desc.PlayerNames[player]
	customize := c.desc.CustomizeAgents[player]
	for {
		choice := c.desc.DefaultAgents[player]
		if customize {
			var err error
			if choice, err = c.ask(fmt.Sprintf("Please choose agent for %s", name), choice); err != nil {
				return engine.Seat[S, A]{}, err
			}
		}
		customize = true

		constructor, err := agent.Lookup(c.registry, choice)
		if err != nil {
			fmt.Fprintf(c.out, "Unknown agent: %s\n", choice)
			continue
		}
		config := ""
		if constructor.NeedConfig {
			if config, err = c.ask(fmt.Sprintf("Please input config for %s", choice), c.desc.DefaultAgentConfigs[player]); err != nil {
				return engine.Seat[S, A]{}, err
			}
		}
		return engine.Seat[S, A]{Agent: constructor.New(config), Name: choice, Config: config}, nil
	}
}
