package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/playertest/internal/domain/event"
)

// Replayer plays recorded batches back on the ticks they were polled.
// Once the recording is exhausted it emits Quit every tick.
type Replayer struct {
	data    ReplayData
	tick    int
	next    int
	decoded [][]event.Event
}

// NewReplayer creates a new replayer from replay data. It fails when a
// record cannot be decoded.
func NewReplayer(data ReplayData) (*Replayer, error) {
	decoded := make([][]event.Event, len(data.Frames))
	for i, fe := range data.Frames {
		for _, rec := range fe.Events {
			ev, err := rec.Decode()
			if err != nil {
				return nil, fmt.Errorf("frame %d: %w", fe.F, err)
			}
			decoded[i] = append(decoded[i], ev)
		}
	}
	return &Replayer{data: data, decoded: decoded}, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Poll returns the events recorded for the current tick and advances
func (r *Replayer) Poll() []event.Event {
	defer func() { r.tick++ }()

	if r.Done() {
		return []event.Event{event.Quit{}}
	}

	var events []event.Event
	for r.next < len(r.data.Frames) && r.data.Frames[r.next].F <= r.tick {
		events = append(events, r.decoded[r.next]...)
		r.next++
	}
	return events
}

// Done reports whether every recorded frame has been played
func (r *Replayer) Done() bool {
	return r.next >= len(r.data.Frames)
}

// CurrentFrame returns the current tick
func (r *Replayer) CurrentFrame() int {
	return r.tick
}

// TotalFrames returns the number of recorded frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}
