// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/lanedodge/road"
	"github.com/mattn/go-shellwords"
)

// ErrUnknownCommand is returned by Exec for a command it does not know.
var ErrUnknownCommand = errors.New("unknown command")

const scriptHelp = `commands:
  insert X Y [KIND] [ID]   add an obstacle (kind: normal, special, bonus)
  delete X Y               remove the obstacle at (X, Y)
  search X Y               show the obstacle at (X, Y)
  column X0 X1             list obstacles with X0 <= x <= X1
  traverse ORDER|all       inorder, preorder, postorder, breadthfirst
  print                    draw the tree
  stats                    show index counters
  check                    verify the tree invariants
  clear                    remove every obstacle
  help                     show this list`

// Session runs index commands, one line at a time, writing results to out.
type Session struct {
	idx    *road.Index
	out    io.Writer
	styles *Styles
	seq    int
}

// NewSession creates a session operating on idx.
func NewSession(idx *road.Index, out io.Writer, styles *Styles) *Session {
	return &Session{idx: idx, out: out, styles: styles}
}

func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	return args, nil
}

func parsePoint(args []string) (road.Point, error) {
	if len(args) < 2 {
		return road.Point{}, fmt.Errorf("expected X Y, got %d argument(s)", len(args))
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return road.Point{}, fmt.Errorf("bad X %q: %v", args[0], err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return road.Point{}, fmt.Errorf("bad Y %q: %v", args[1], err)
	}
	return road.Point{X: x, Y: y}, nil
}

// Exec runs a single command line. Blank lines and # comments are ignored.
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	args, err := splitCommand(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "insert", "add":
		p, err := parsePoint(args)
		if err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		kind := road.Normal
		if len(args) > 2 {
			if kind, err = road.ParseKind(args[2]); err != nil {
				return fmt.Errorf("insert: %w", err)
			}
		}
		id := fmt.Sprintf("obstacle-%d", s.seq)
		if len(args) > 3 {
			id = args[3]
		}
		s.seq++

		o := road.Obstacle{ID: id, Position: p, Kind: kind}
		if s.idx.Insert(o) {
			fmt.Fprintf(s.out, "inserted %s %s\n", o.Position, s.styles.Kind(kind))
		} else {
			fmt.Fprintf(s.out, "refused %s: coordinates already in use\n", o.Position)
		}

	case "delete", "remove":
		p, err := parsePoint(args)
		if err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		if s.idx.Remove(p) {
			fmt.Fprintf(s.out, "deleted %s\n", p)
		} else {
			fmt.Fprintf(s.out, "not found %s\n", p)
		}

	case "search", "lookup":
		p, err := parsePoint(args)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}
		if o, ok := s.idx.Lookup(p); ok {
			fmt.Fprintf(s.out, "found %s %s %s\n", o.Position, s.styles.Kind(o.Kind), o.ID)
		} else {
			fmt.Fprintf(s.out, "not found %s\n", p)
		}

	case "column":
		if len(args) < 2 {
			return fmt.Errorf("column: expected X0 X1")
		}
		x0, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("column: bad X0 %q: %v", args[0], err)
		}
		x1, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("column: bad X1 %q: %v", args[1], err)
		}
		title := fmt.Sprintf("column %d..%d", x0, x1)
		fmt.Fprint(s.out, renderObstacles(s.styles, title, s.idx.InColumn(x0, x1)))

	case "traverse", "traversal":
		which := "all"
		if len(args) > 0 {
			which = args[0]
		}
		orders, err := ordersFromFlag(which)
		if err != nil {
			return fmt.Errorf("traverse: %w", err)
		}
		for _, order := range orders {
			fmt.Fprint(s.out, renderTraversal(s.styles, s.idx, order))
		}

	case "print":
		return s.idx.Fprint(s.out)

	case "stats":
		fmt.Fprintln(s.out, renderStats(s.styles, s.idx.Stats()))

	case "check":
		if err := s.idx.Check(); err != nil {
			return fmt.Errorf("check: %w", err)
		}
		fmt.Fprintln(s.out, "ok")

	case "clear":
		s.idx.Clear()
		fmt.Fprintln(s.out, "cleared")

	case "help":
		fmt.Fprintln(s.out, scriptHelp)

	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
	}
	return nil
}

// Run executes every line of r and stops at the first failing line.
func (s *Session) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := s.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}
