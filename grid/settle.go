package grid

import (
	"context"
	"fmt"
)

// TerminationMode selects when the settling simulation stops.
type TerminationMode uint8

const (
	// ModeAbyss stops when a particle falls past the lowest
	// obstruction; that particle does not count as settled.
	ModeAbyss TerminationMode = iota
	// ModeFloor adds an implicit solid floor two rows below the lowest
	// obstruction and stops once a particle settles at the origin
	// itself; that particle counts.
	ModeFloor
)

// SettleOption configures the settling simulation.
type SettleOption func(*settleOptions)

type settleOptions struct {
	ctx   context.Context
	mode  TerminationMode
	empty byte
	rest  byte
}

func defaultSettleOptions() settleOptions {
	return settleOptions{
		ctx:   context.Background(),
		mode:  ModeAbyss,
		empty: '.',
		rest:  'o',
	}
}

// WithSettleContext sets a cancellation context for the simulation.
func WithSettleContext(ctx context.Context) SettleOption {
	return func(o *settleOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithFloor switches termination to ModeFloor.
func WithFloor() SettleOption {
	return func(o *settleOptions) { o.mode = ModeFloor }
}

// WithLabels overrides the labels treated as empty space and written
// for settled particles (defaults '.' and 'o').
func WithLabels(empty, rest byte) SettleOption {
	return func(o *settleOptions) {
		o.empty = empty
		o.rest = rest
	}
}

// Settle drops particles from origin until the configured termination
// condition fires and returns how many came to rest. Each step tries
// down, down-left, down-right in that fixed preference order and takes
// the first empty candidate; with no candidate free the particle
// freezes into the grid as an obstruction and the next one drops.
//
// The caller's grid is never mutated: the simulation runs on a private
// clone. In ModeFloor the grid must be wide enough for the pile; a
// particle escaping the sides yields ErrOutOfBounds. In ModeAbyss a
// side escape at or below the lowest obstruction simply ends the run.
func Settle(g *Grid, origin Point, opts ...SettleOption) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("%w: nil grid", ErrOptionViolation)
	}
	if !g.InBounds(origin) {
		return 0, fmt.Errorf("%w: origin %v", ErrOutOfBounds, origin)
	}
	o := defaultSettleOptions()
	for _, opt := range opts {
		opt(&o)
	}

	work := g.Clone()
	lowest := lowestObstruction(work, o.empty)
	if lowest < 0 {
		return 0, fmt.Errorf("%w: no obstructions below the origin", ErrOptionViolation)
	}
	// Implicit floor row for ModeFloor; unreachable in ModeAbyss.
	floorY := lowest + 2

	settled := 0
	for {
		select {
		case <-o.ctx.Done():
			return settled, o.ctx.Err()
		default:
		}

		// A plugged origin ends the run in either mode: no further
		// particle can enter the grid.
		if work.At(origin) != o.empty {
			return settled, nil
		}

		p := origin
	fall:
		for {
			if o.mode == ModeAbyss && p.Y > lowest {
				// Past every obstruction: this particle falls forever.
				return settled, nil
			}
			if o.mode == ModeFloor && p.Y == floorY-1 {
				break fall // resting on the implicit floor
			}
			for _, d := range []Point{South, {X: -1, Y: 1}, {X: 1, Y: 1}} {
				next := p.Add(d)
				if !work.InBounds(next) {
					if o.mode == ModeFloor {
						return settled, fmt.Errorf("%w: particle escaped at %v", ErrOutOfBounds, next)
					}
					// Abyss mode: out the side means past the edge of
					// the scanned world; treat as empty and keep falling.
					p = next
					continue fall
				}
				if work.At(next) == o.empty {
					p = next
					continue fall
				}
			}
			break fall // all three candidates blocked
		}

		work.Set(p, o.rest)
		settled++
	}
}

// lowestObstruction returns the largest y holding a non-empty cell, or
// -1 when the grid is entirely empty.
func lowestObstruction(g *Grid, empty byte) int {
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			if g.At(Point{X: x, Y: y}) != empty {
				return y
			}
		}
	}
	return -1
}
