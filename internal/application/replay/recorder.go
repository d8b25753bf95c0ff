package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/playertest/internal/application/system"
	"github.com/younwookim/playertest/internal/domain/event"
)

// Recorder wraps an event source and records every non-empty batch
type Recorder struct {
	source    system.EventSource
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder around source
func NewRecorder(source system.EventSource) *Recorder {
	return &Recorder{
		source: source,
		data: ReplayData{
			Version:   Version,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameEvents, 0, 600),
		},
		recording: true,
	}
}

// Poll forwards the wrapped source's batch and records it
func (r *Recorder) Poll() []event.Event {
	events := r.source.Poll()
	if r.recording && len(events) > 0 {
		fe := FrameEvents{F: r.frame, Events: make([]EventRecord, len(events))}
		for i, ev := range events {
			fe.Events[i] = Encode(ev)
		}
		r.data.Frames = append(r.data.Frames, fe)
	}
	r.frame++
	return events
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
