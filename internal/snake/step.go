package snake

import "github.com/vovakirdan/snake-tui/internal/core"

// Step advances the session by one tick and returns the next session.
//
// It is a no-op unless the phase is Running and a direction has been
// buffered. A buffered direction that reverses the current one is silently
// ignored and the current direction retained. A wall or self collision
// leaves the session unchanged and returns a *CollisionError; the caller
// drives the Running→GameOver transition.
func Step(s Session) (Session, error) {
	if s.Phase != PhaseRunning {
		return s, nil
	}
	// The snake does not move before the first directional input.
	if s.Pending == DirNone {
		return s, nil
	}

	if !reverses(s.Pending, s.Dir) {
		s.Dir = s.Pending
	}

	dx, dy := s.Dir.Vector()
	newHead := s.Head().Add(dx, dy)

	if !s.Board.Contains(newHead) {
		return s, &CollisionError{Kind: CollisionWall, At: newHead}
	}
	// Checked against the full body, tail included: the tail has not been
	// popped yet at this point, so stepping onto it is fatal.
	if s.Occupies(newHead) {
		return s, &CollisionError{Kind: CollisionSelf, At: newHead}
	}

	if newHead == s.Food {
		// Grow: keep the tail, net length +1.
		s.Snake = prepend(newHead, s.Snake)
		s.Score += s.Reward
		s.Food = spawnFood(s.rng, s.Board, s.Occupies)
	} else {
		// Normal move: drop the tail, net length unchanged.
		s.Snake = prepend(newHead, s.Snake[:len(s.Snake)-1])
	}

	return s, nil
}

// reverses reports whether the pending direction is the exact reverse of
// the current one. The comparison is per half-axis against the current
// direction: a pending component is rejected only when it negates the
// current component on the same axis. With DirNone current, nothing is
// blocked.
func reverses(pending, cur Direction) bool {
	pdx, pdy := pending.Vector()
	cdx, cdy := cur.Vector()
	if pdx != 0 && pdx == -cdx {
		return true
	}
	if pdy != 0 && pdy == -cdy {
		return true
	}
	return false
}

// prepend builds a new body slice with head in front of the given
// segments. It always allocates so the previous session's body is never
// aliased.
func prepend(head core.Cell, body []core.Cell) []core.Cell {
	next := make([]core.Cell, 0, len(body)+1)
	next = append(next, head)
	next = append(next, body...)
	return next
}
