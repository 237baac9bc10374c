package events

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ReadAll decodes a JSONL care log from r, one event object per line.
// Blank lines are allowed. Unlike a cache loader this reader is strict:
// the first malformed line or record without a usable timestamp aborts
// the whole read, because a report over silently dropped events would be
// quietly wrong.
func ReadAll(r io.Reader) ([]Event, error) {
	var evs []Event
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var e Event
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("line %d: invalid event: %w", line, err)
		}
		if e.Kind == "" {
			return nil, fmt.Errorf("line %d: event has no kind", line)
		}
		if _, err := e.Timestamp(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		evs = append(evs, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}
	return evs, nil
}

// LoadFiles reads every named log file and concatenates their events in
// argument order. Files are parsed concurrently; the per-file slices are
// placed by index so the result is deterministic regardless of which file
// finishes first (tie-breaking in the stable sort depends on that).
func LoadFiles(paths []string) ([]Event, error) {
	batches := make([][]Event, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			evs, err := ReadAll(f)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			batches[i] = evs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Event
	for i, batch := range batches {
		log.Debug().Str("file", paths[i]).Int("count", len(batch)).Msg("Loaded events")
		all = append(all, batch...)
	}
	return all, nil
}
