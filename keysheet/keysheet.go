// Package keysheet reads monthly key lists written in YAML.
//
//	name: Barbarossa
//	entries:
//	  - day: 7
//	    reflector: B
//	    rotors: [II, IV, V]
//	    rings: [2, 21, 12]
//	    plugboard: AV BS CG DL FU HZ IN KM OW RX
//	    ground: WXC
package keysheet

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bgallie/enigma/engine"
	"github.com/bgallie/enigma/machines"
)

var (
	ErrNoSuchDay    = errors.New("keysheet: no entry for day")
	ErrInvalidEntry = errors.New("keysheet: invalid entry")
)

// Entry is the key for one day.
type Entry struct {
	Day        int      `yaml:"day"`
	Reflector  string   `yaml:"reflector"`
	Rotors     []string `yaml:"rotors"`
	Rings      []int    `yaml:"rings"`
	Plugboard  string   `yaml:"plugboard"`
	Ground     string   `yaml:"ground"`
	DoubleStep bool     `yaml:"doubleStep"`
}

// Sheet is a key list.
type Sheet struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

// Load reads a key list and checks that every entry builds a machine.
func Load(r io.Reader) (*Sheet, error) {
	var sheet Sheet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sheet); err != nil {
		return nil, fmt.Errorf("keysheet: %w", err)
	}

	seen := make(map[int]bool, len(sheet.Entries))
	for _, ent := range sheet.Entries {
		if seen[ent.Day] {
			return nil, fmt.Errorf("%w: day %d is listed twice", ErrInvalidEntry, ent.Day)
		}

		seen[ent.Day] = true
		s, err := ent.Settings()
		if err != nil {
			return nil, err
		}

		if _, err := machines.Build(s); err != nil {
			return nil, fmt.Errorf("%w: day %d: %w", ErrInvalidEntry, ent.Day, err)
		}
	}

	return &sheet, nil
}

// LoadFile reads the key list in the named file.
func LoadFile(name string) (*Sheet, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	defer f.Close()
	return Load(f)
}

// Day returns the machine settings for the given day.
func (s *Sheet) Day(day int) (machines.Settings, error) {
	for _, ent := range s.Entries {
		if ent.Day == day {
			return ent.Settings()
		}
	}

	return machines.Settings{}, fmt.Errorf("%w %d", ErrNoSuchDay, day)
}

// Settings converts the entry to machine settings.
func (ent Entry) Settings() (machines.Settings, error) {
	var s machines.Settings
	if len(ent.Rotors) != engine.NumberOfRotors {
		return s, fmt.Errorf("%w: day %d names %d rotors, want %d", ErrInvalidEntry, ent.Day, len(ent.Rotors), engine.NumberOfRotors)
	}

	if len(ent.Rings) != 0 && len(ent.Rings) != engine.NumberOfRotors {
		return s, fmt.Errorf("%w: day %d gives %d rings, want %d", ErrInvalidEntry, ent.Day, len(ent.Rings), engine.NumberOfRotors)
	}

	s.Reflector = ent.Reflector
	copy(s.Rotors[:], ent.Rotors)
	copy(s.Rings[:], ent.Rings)
	s.Positions = ent.Ground
	s.Plugboard = ent.Plugboard
	s.DoubleStep = ent.DoubleStep
	return s, nil
}
