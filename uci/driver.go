// Package uci implements a subset of the Universal Chess Interface
// protocol over an io.Reader/io.Writer pair: uci, isready, ucinewgame,
// position, go, stop and quit.
//
// Commands are handled by three concurrent tasks coordinated with
// golang.org/x/sync/errgroup: an I/O task that scans lines off the
// input, a control task that parses and dispatches them, and, while a
// "go" is in flight, a search task running the engine. A "stop" or
// "quit" reaches the control task immediately because it never blocks
// on the search; the search itself is cancelled cooperatively through
// search.TimeControl.Stop.
package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SimjanovskiNikola/chesscore/board"
	"github.com/SimjanovskiNikola/chesscore/eval"
	"github.com/SimjanovskiNikola/chesscore/search"
)

// ErrQuit is returned by Run when the "quit" command is received.
var ErrQuit = errors.New("quit")

const defaultHashSizeMB = 64

// Driver holds the engine state shared across UCI commands.
type Driver struct {
	out io.Writer
	log *infoLogger

	mu     sync.Mutex // guards engine/tc against the concurrent search task
	engine *search.Engine
	tc     *search.TimeControl
}

// NewDriver builds a Driver that writes protocol output to out.
func NewDriver(out io.Writer) *Driver {
	logger := &infoLogger{out: out}
	tt := search.NewTranspositionTable(defaultHashSizeMB)
	return &Driver{
		out:    out,
		log:    logger,
		engine: search.NewEngine(nil, tt, eval.NewMaterial(), logger, search.Options{}),
	}
}

// LastStats returns the most recently completed search iteration's
// statistics, for diag.StatsSource.
func (d *Driver) LastStats() search.Stats { return d.log.LastStats() }

// Run drives the protocol loop over in until "quit" is received or in
// is exhausted.
func (d *Driver) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error { return d.readLines(ctx, in, lines) })
	group.Go(func() error { return d.controlLoop(ctx, group, lines) })

	err := group.Wait()
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// readLines is the I/O task: it never does protocol work, so a slow
// write to out or a long search never delays reading the next line.
func (d *Driver) readLines(ctx context.Context, in io.Reader, lines chan<- string) error {
	defer close(lines)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return nil
		}
	}
	return scanner.Err()
}

// controlLoop is the control task: it dispatches one command at a
// time, spawning the search task (via group.Go) for "go" rather than
// running it inline, so a "stop" for that search can still be read off
// lines while it is in flight.
func (d *Driver) controlLoop(ctx context.Context, group *errgroup.Group, lines <-chan string) error {
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if err := d.dispatch(group, line); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (d *Driver) dispatch(group *errgroup.Group, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "uci":
		d.handleUCI()
	case "isready":
		fmt.Fprintln(d.out, "readyok")
	case "ucinewgame":
		d.handleNewGame()
	case "position":
		d.handlePosition(args)
	case "go":
		d.handleGo(group, args)
	case "stop":
		d.handleStop()
	case "quit":
		d.handleStop()
		return ErrQuit
	default:
		fmt.Fprintf(d.out, "info string unknown command %s\n", cmd)
	}
	return nil
}

func (d *Driver) handleUCI() {
	fmt.Fprintln(d.out, "id name chesscore")
	fmt.Fprintln(d.out, "id author the chesscore authors")
	fmt.Fprintf(d.out, "option name Hash type spin default %d min 1 max 4096\n", defaultHashSizeMB)
	fmt.Fprintln(d.out, "uciok")
}

func (d *Driver) handleNewGame() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine = search.NewEngine(nil, search.NewTranspositionTable(defaultHashSizeMB), eval.NewMaterial(), d.log, search.Options{})
}

// handlePosition applies a "position" command. Per the error-handling
// policy, a malformed FEN or an unknown subcommand rejects the whole
// command without touching the board; an illegal move partway through a
// "moves" list stops applying further moves and keeps the prefix already
// played as the new root. Either way the driver keeps running.
func (d *Driver) handlePosition(args []string) {
	if len(args) == 0 {
		d.logError("position: missing argument")
		return
	}

	var pos *board.Position
	var err error
	i := 0
	switch args[0] {
	case "startpos":
		pos, err = board.PositionFromFEN(board.FENStartPos)
		i = 1
	case "fen":
		j := 1
		for j < len(args) && args[j] != "moves" {
			j++
		}
		pos, err = board.PositionFromFEN(strings.Join(args[1:j], " "))
		i = j
	default:
		d.logError(fmt.Sprintf("position: unknown subcommand %s", args[0]))
		return
	}
	if err != nil {
		d.logError(fmt.Sprintf("position: %v", err))
		return
	}

	if i < len(args) {
		if args[i] != "moves" {
			d.logError(fmt.Sprintf("position: expected 'moves', got %s", args[i]))
		} else {
			for _, mv := range args[i+1:] {
				m, err := pos.UCIToMove(mv)
				if err != nil {
					d.logError(fmt.Sprintf("position: illegal move %s, stopping at last valid position: %v", mv, err))
					break
				}
				pos.DoMove(m)
			}
		}
	}

	d.mu.Lock()
	d.engine.SetPosition(pos)
	d.mu.Unlock()
}

func (d *Driver) logError(msg string) {
	fmt.Fprintf(d.out, "info string %s\n", msg)
}

func (d *Driver) handleGo(group *errgroup.Group, args []string) {
	d.mu.Lock()
	if d.tc != nil {
		d.mu.Unlock()
		d.logError("go: a search is already running")
		return
	}
	pos := d.engine.Position
	tc := parseGo(pos, args)
	d.tc = tc
	d.mu.Unlock()

	tc.Start()
	group.Go(func() error {
		d.mu.Lock()
		eng := d.engine
		d.mu.Unlock()

		pv := eng.Search(tc)
		d.mu.Lock()
		d.tc = nil
		d.mu.Unlock()
		if len(pv) == 0 {
			fmt.Fprintln(d.out, "bestmove (none)")
		} else {
			fmt.Fprintf(d.out, "bestmove %s\n", pv[0].UCI())
		}
		return nil
	})
}

func (d *Driver) handleStop() {
	d.mu.Lock()
	tc := d.tc
	d.mu.Unlock()
	if tc != nil {
		tc.Stop()
	}
}

// parseGo builds a TimeControl from the arguments of a "go" command.
func parseGo(pos *board.Position, args []string) *search.TimeControl {
	tc := search.NewTimeControl(pos)
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime":
			i++
			tc.WTime = parseMillis(args, i)
		case "btime":
			i++
			tc.BTime = parseMillis(args, i)
		case "winc":
			i++
			tc.WInc = parseMillis(args, i)
		case "binc":
			i++
			tc.BInc = parseMillis(args, i)
		case "movestogo":
			i++
			tc.MovesToGo = parseInt(args, i, tc.MovesToGo)
		case "depth":
			i++
			tc.Depth = parseInt(args, i, tc.Depth)
		case "nodes":
			i++
			tc.NodesLimit = uint64(parseInt(args, i, int(tc.NodesLimit)))
		case "movetime":
			i++
			movetime := parseMillis(args, i)
			tc.WTime, tc.BTime = movetime, movetime
			tc.WInc, tc.BInc = 0, 0
			tc.MovesToGo = 1
		case "infinite":
			// NewTimeControl already defaults to an effectively unbounded clock.
		}
	}
	return tc
}

func parseMillis(args []string, i int) time.Duration {
	if i >= len(args) {
		return 0
	}
	n, _ := strconv.Atoi(args[i])
	return time.Duration(n) * time.Millisecond
}

func parseInt(args []string, i int, fallback int) int {
	if i >= len(args) {
		return fallback
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return fallback
	}
	return n
}
