package score

import (
	"sort"

	crerr "github.com/cockroachdb/errors"
)

const (
	FramesPerGame     = 10
	MaxThrowsPerFrame = 3
	MaxPins           = 10
	MaxGameTotal      = 300
)

var ErrInvalidScore = crerr.New("invalid score")

type ThrowType string

const (
	ThrowTypeThrow ThrowType = "throw"
	ThrowTypeFoul  ThrowType = "foul"
	ThrowTypeSplit ThrowType = "split"
)

func (t ThrowType) Valid() bool {
	switch t {
	case ThrowTypeThrow, ThrowTypeFoul, ThrowTypeSplit:
		return true
	default:
		return false
	}
}

// Throw is one recorded ball of a frame.
type Throw struct {
	Type  ThrowType
	Value int
}

func (t Throw) Validate() error {
	if !t.Type.Valid() {
		return crerr.Mark(crerr.Newf("unknown throw type %q", string(t.Type)), ErrInvalidScore)
	}
	if t.Value < 0 || t.Value > MaxPins {
		return crerr.Mark(crerr.Newf("throw value %d must be between 0 and %d", t.Value, MaxPins), ErrInvalidScore)
	}
	return nil
}

// Frame holds up to three typed throws.
type Frame struct {
	Number int
	Throws []Throw
}

func (f Frame) Validate() error {
	if f.Number < 1 || f.Number > FramesPerGame {
		return crerr.Mark(crerr.Newf("frame number %d must be between 1 and %d", f.Number, FramesPerGame), ErrInvalidScore)
	}
	if len(f.Throws) > MaxThrowsPerFrame {
		return crerr.Mark(crerr.Newf("frame %d has %d throws, at most %d allowed", f.Number, len(f.Throws), MaxThrowsPerFrame), ErrInvalidScore)
	}
	for _, throw := range f.Throws {
		if err := throw.Validate(); err != nil {
			return crerr.Wrapf(err, "frame %d", f.Number)
		}
	}
	return nil
}

// ThrowList returns the pin values of the recorded throws in order.
func (f Frame) ThrowList() []int {
	out := make([]int, 0, len(f.Throws))
	for _, throw := range f.Throws {
		out = append(out, throw.Value)
	}
	return out
}

func (f Frame) HasSplit() bool {
	for _, throw := range f.Throws {
		if throw.Type == ThrowTypeSplit {
			return true
		}
	}
	return false
}

// Game is one numbered game of a match bowler. Frames are kept ordered by number.
type Game struct {
	ID       string
	BowlerID string
	Number   int
	Total    int
	Frames   []Frame
}

func ValidateTotal(total int) error {
	if total < 0 || total > MaxGameTotal {
		return crerr.Mark(crerr.Newf("game total %d must be between 0 and %d", total, MaxGameTotal), ErrInvalidScore)
	}
	return nil
}

// Splits lists, in frame order, the numbers of frames that recorded a split.
func (g Game) Splits() []int {
	out := make([]int, 0)
	for _, frame := range g.sortedFrames() {
		if frame.HasSplit() {
			out = append(out, frame.Number)
		}
	}
	return out
}

func (g Game) Frame(number int) (Frame, bool) {
	for _, frame := range g.Frames {
		if frame.Number == number {
			return frame, true
		}
	}
	return Frame{}, false
}

// PutFrame replaces the frame with the same number or adds it.
func (g *Game) PutFrame(frame Frame) {
	frame.Throws = append([]Throw(nil), frame.Throws...)
	for i := range g.Frames {
		if g.Frames[i].Number == frame.Number {
			g.Frames[i] = frame
			return
		}
	}
	g.Frames = append(g.Frames, frame)
	g.Frames = g.sortedFrames()
}

func (g Game) sortedFrames() []Frame {
	out := append([]Frame(nil), g.Frames...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// SeriesTotal sums the per-game totals.
func SeriesTotal(games []Game) int {
	total := 0
	for _, game := range games {
		total += game.Total
	}
	return total
}
