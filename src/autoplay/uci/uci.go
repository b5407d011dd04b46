// Package uci drives an external UCI engine process as an autoplay.Player.
package uci

import (
	"bufio"
	"canvaschess/src/autoplay"
	"canvaschess/src/base"
	"canvaschess/src/logic/rules"
	"canvaschess/src/logx"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

var ErrNotRunning = errors.New("uci process not running")

// Info is the latest "info" line of a search
type Info struct {
	Depth   int
	TimeMs  int64
	Nodes   int64
	NPS     int64
	ScoreCP int
	MateIn  int // plies, sign is the side to move
	PV      []string
}

type Engine struct {
	path  string
	args  []string
	level autoplay.Level

	cmd   *exec.Cmd
	in    io.WriteCloser
	lines chan string

	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.RWMutex
	info   Info
	ident  string
	logger logx.Logger
}

// New only records the command line, Start opens the process
func New(logger logx.Logger, level autoplay.Level, path string, args ...string) *Engine {
	return &Engine{path: path, args: args, level: level, logger: logger.Named("uci").With("engine", path)}
}

func (e *Engine) Name() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.ident != "" {
		return e.ident
	}
	return filepath.Base(e.path)
}

func (e *Engine) Start(ctx context.Context) error {
	if e.path == "" {
		return errors.New("uci: empty engine path")
	}
	if e.cmd != nil {
		return errors.New("uci: already started")
	}

	cmd := exec.Command(e.path, e.args...)
	in, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("uci: stdin of %s: %w", e.path, err)
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("uci: stdout of %s: %w", e.path, err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("uci: open %s: %w", e.path, err)
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	e.cmd = cmd
	e.in = in
	e.lines = make(chan string, 256)
	e.cancel = cancel
	e.wg.Add(1)
	go e.stdoutLoop(loopCtx, out)

	if err := e.exec("uci"); err != nil {
		_ = e.Close()
		return err
	}
	if _, err := e.waitFor(ctx, "uciok", autoplay.HandshakeTimeout); err != nil {
		_ = e.Close()
		return err
	}
	if err := e.ready(ctx); err != nil {
		_ = e.Close()
		return err
	}
	e.logger.Infof("uci engine %s ready", e.Name())
	return nil
}

// Choose searches fen at the configured level. The reply is checked against
// legal before it is returned.
func (e *Engine) Choose(ctx context.Context, fen string, legal []rules.Notation) (autoplay.Pick, error) {
	if e.cmd == nil {
		return autoplay.Pick{}, ErrNotRunning
	}
	if len(legal) == 0 {
		return autoplay.Pick{}, autoplay.ErrNoMoves
	}
	if err := e.exec("position fen " + fen); err != nil {
		return autoplay.Pick{}, err
	}
	if err := e.ready(ctx); err != nil {
		return autoplay.Pick{}, err
	}

	e.mu.Lock()
	e.info = Info{}
	e.mu.Unlock()

	cmd := goCommand(e.level.Params())
	e.logger.Debugf("GUI: %s", cmd)
	if err := e.exec(cmd); err != nil {
		return autoplay.Pick{}, err
	}

	line, err := e.waitFor(ctx, "bestmove", e.level.Timeout())
	if err != nil {
		_ = e.exec("stop")
		return autoplay.Pick{}, err
	}
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[1] == "(none)" {
		return autoplay.Pick{}, autoplay.ErrNoMoves
	}
	pick, err := autoplay.ParseUCI(fields[1])
	if err != nil {
		return autoplay.Pick{}, err
	}
	if !pick.Matches(legal) {
		return autoplay.Pick{}, fmt.Errorf("%w: engine answered %s", base.ErrIllegalMove, pick)
	}
	return pick, nil
}

func (e *Engine) Info() Info {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.info
}

// Close asks the engine to quit and kills it if it does not
func (e *Engine) Close() error {
	if e.cmd == nil {
		return nil
	}
	_ = e.exec("quit")
	_ = e.in.Close()
	e.cancel()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(autoplay.HandshakeTimeout):
		if e.cmd.Process != nil {
			_ = e.cmd.Process.Kill()
		}
		<-done
	}

	err := e.cmd.Wait()
	e.cmd = nil
	e.in = nil
	e.logger.Info("uci process terminated")
	return err
}

func (e *Engine) exec(cmd string) error {
	if e.in == nil {
		return ErrNotRunning
	}
	_, err := io.WriteString(e.in, cmd+"\n")
	return err
}

func (e *Engine) ready(ctx context.Context) error {
	if err := e.exec("isready"); err != nil {
		return err
	}
	_, err := e.waitFor(ctx, "readyok", autoplay.HandshakeTimeout)
	return err
}

func (e *Engine) waitFor(ctx context.Context, prefix string, timeout time.Duration) (string, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case line, ok := <-e.lines:
			if !ok {
				return "", fmt.Errorf("uci: waiting for %s: %w", prefix, ErrNotRunning)
			}
			if strings.HasPrefix(line, prefix) {
				return line, nil
			}
		case <-timer.C:
			return "", fmt.Errorf("uci: timeout waiting for %s", prefix)
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

func (e *Engine) stdoutLoop(ctx context.Context, out io.Reader) {
	defer e.wg.Done()
	defer close(e.lines)

	scr := bufio.NewScanner(out)
	for scr.Scan() {
		line := strings.TrimSpace(scr.Text())
		if line == "" {
			continue
		}
		e.logger.Debugf("ENGINE: %s", line)

		switch {
		case strings.HasPrefix(line, "info "):
			if info, ok := ParseInfo(line); ok {
				e.mu.Lock()
				e.info = info
				e.mu.Unlock()
			}
		case strings.HasPrefix(line, "id name "):
			e.mu.Lock()
			e.ident = strings.TrimPrefix(line, "id name ")
			e.mu.Unlock()
		}

		select {
		case e.lines <- line:
		case <-ctx.Done():
			return
		}
	}
}

func goCommand(p autoplay.SearchParams) string {
	var b strings.Builder
	b.WriteString("go")
	if p.MaxDepth > 0 {
		b.WriteString(" depth " + strconv.Itoa(p.MaxDepth))
	}
	if p.MaxTimeMs > 0 {
		b.WriteString(" movetime " + strconv.FormatInt(p.MaxTimeMs, 10))
	}
	return b.String()
}

// ParseInfo reads the fields of an "info" line. Lines with only a string or
// currmove report are skipped.
func ParseInfo(line string) (Info, bool) {
	var info Info
	found := false
	fld := strings.Fields(line)
	n := len(fld)
	for i := 1; i < n; i++ {
		switch fld[i] {
		case "depth":
			if i+1 < n {
				info.Depth, _ = strconv.Atoi(fld[i+1])
				found = true
				i++
			}
		case "nodes":
			if i+1 < n {
				info.Nodes, _ = strconv.ParseInt(fld[i+1], 10, 64)
				i++
			}
		case "nps":
			if i+1 < n {
				info.NPS, _ = strconv.ParseInt(fld[i+1], 10, 64)
				i++
			}
		case "time":
			if i+1 < n {
				info.TimeMs, _ = strconv.ParseInt(fld[i+1], 10, 64)
				i++
			}
		case "score":
			if i+2 < n {
				v, err := strconv.Atoi(fld[i+2])
				if err == nil {
					switch fld[i+1] {
					case "cp":
						info.ScoreCP, info.MateIn = v, 0
					case "mate":
						info.MateIn = v
					}
				}
				i += 2
			}
		case "pv":
			info.PV = append([]string(nil), fld[i+1:]...)
			i = n
		case "string":
			i = n
		}
	}
	return info, found
}
