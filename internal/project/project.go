// Package project loads storyboard files: the tracks and timed blocks
// a timeline renders.
package project

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Track kinds. Styling varies by kind; the timeline core treats them
// identically.
const (
	KindSlides  = "slides"
	KindAudio   = "audio"
	KindVideo   = "video"
	KindGeneric = "generic"
)

var (
	// ErrUnknownKind is returned for a track kind outside the known set.
	ErrUnknownKind = errors.New("project: unknown track kind")
	// ErrNoTracks is returned for a storyboard without any tracks.
	ErrNoTracks = errors.New("project: storyboard has no tracks")
)

// Block is one timed content item on a track. Interactive blocks own
// pointer input landing on them; the timeline must not treat such a
// click as a background seek.
type Block struct {
	Start       float64 `yaml:"start"`
	Duration    float64 `yaml:"duration"`
	Label       string  `yaml:"label"`
	Interactive bool    `yaml:"interactive"`
}

// End returns the block's end time in seconds.
func (b Block) End() float64 { return b.Start + b.Duration }

// Track is one semantic lane of the storyboard.
type Track struct {
	Kind      string  `yaml:"kind"`
	Label     string  `yaml:"label"`
	Height    float64 `yaml:"height"`
	MaxHeight float64 `yaml:"max_height"`
	Blocks    []Block `yaml:"blocks"`
}

// End returns the latest block end on the track.
func (t Track) End() float64 {
	var end float64
	for _, b := range t.Blocks {
		if b.End() > end {
			end = b.End()
		}
	}
	return end
}

// Project is a parsed storyboard.
type Project struct {
	Title    string  `yaml:"title"`
	Duration float64 `yaml:"duration"`
	Tracks   []Track `yaml:"tracks"`
}

// Load reads and parses a storyboard file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("project: %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes, validates and normalizes a storyboard document.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	p.normalize()
	return &p, nil
}

func (p *Project) validate() error {
	if len(p.Tracks) == 0 {
		return ErrNoTracks
	}
	if p.Duration < 0 {
		return fmt.Errorf("duration %v is negative", p.Duration)
	}
	for ti := range p.Tracks {
		tr := &p.Tracks[ti]
		switch tr.Kind {
		case KindSlides, KindAudio, KindVideo, KindGeneric:
		case "":
			tr.Kind = KindGeneric
		default:
			return fmt.Errorf("track %d: %w: %q", ti, ErrUnknownKind, tr.Kind)
		}
		if tr.Height < 0 || tr.MaxHeight < 0 {
			return fmt.Errorf("track %d: negative height", ti)
		}
		for bi, b := range tr.Blocks {
			if b.Start < 0 {
				return fmt.Errorf("track %d block %d: negative start %v", ti, bi, b.Start)
			}
			if b.Duration <= 0 {
				return fmt.Errorf("track %d block %d: non-positive duration %v", ti, bi, b.Duration)
			}
		}
	}
	return nil
}

// normalize fills derived defaults: a missing duration extends to the
// furthest block end, a missing track height defaults to one row.
func (p *Project) normalize() {
	for ti := range p.Tracks {
		tr := &p.Tracks[ti]
		if tr.Height == 0 {
			tr.Height = 1
		}
		if end := tr.End(); end > p.Duration {
			p.Duration = end
		}
	}
}
