package keysheet_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/keysheet"
	"github.com/bgallie/enigma/machines"
)

const sheet = `name: Barbarossa
entries:
  - day: 7
    reflector: B
    rotors: [II, IV, V]
    rings: [2, 21, 12]
    plugboard: AV BS CG DL FU HZ IN KM OW RX
    ground: WXC
  - day: 8
    reflector: C
    rotors: [I, II, III]
    doubleStep: true
`

func TestLoad(t *testing.T) {
	ks, err := keysheet.Load(strings.NewReader(sheet))
	require.NoError(t, err)
	assert.Equal(t, "Barbarossa", ks.Name)
	assert.Len(t, ks.Entries, 2)

	tests := []struct {
		day  int
		want machines.Settings
	}{
		{
			day: 7,
			want: machines.Settings{
				Reflector: "B",
				Rotors:    [3]string{"II", "IV", "V"},
				Rings:     [3]int{2, 21, 12},
				Positions: "WXC",
				Plugboard: "AV BS CG DL FU HZ IN KM OW RX",
			},
		},
		{
			day: 8,
			want: machines.Settings{
				Reflector:  "C",
				Rotors:     [3]string{"I", "II", "III"},
				DoubleStep: true,
			},
		},
	}
	for _, tt := range tests {
		got, err := ks.Day(tt.day)
		require.NoError(t, err)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("day %d settings mismatch (-want +got):\n%s", tt.day, diff)
		}
	}

	_, err = ks.Day(9)
	assert.ErrorIs(t, err, keysheet.ErrNoSuchDay)
}

func TestDaySevenDecryptsMessageKey(t *testing.T) {
	ks, err := keysheet.Load(strings.NewReader(sheet))
	require.NoError(t, err)

	s, err := ks.Day(7)
	require.NoError(t, err)
	e, err := machines.Build(s)
	require.NoError(t, err)

	key, err := e.EncodeString("KCH")
	require.NoError(t, err)
	assert.Equal(t, "BLA", key)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			"duplicate day",
			"entries:\n  - {day: 1, reflector: B, rotors: [I, II, III]}\n  - {day: 1, reflector: C, rotors: [I, II, III]}\n",
			keysheet.ErrInvalidEntry,
		},
		{
			"two rotors",
			"entries:\n  - {day: 1, reflector: B, rotors: [I, II]}\n",
			keysheet.ErrInvalidEntry,
		},
		{
			"two rings",
			"entries:\n  - {day: 1, reflector: B, rotors: [I, II, III], rings: [1, 2]}\n",
			keysheet.ErrInvalidEntry,
		},
		{
			"unknown rotor",
			"entries:\n  - {day: 1, reflector: B, rotors: [I, II, IX]}\n",
			machines.ErrUnknownPart,
		},
		{
			"bad plugboard",
			"entries:\n  - {day: 1, reflector: B, rotors: [I, II, III], plugboard: AB BC}\n",
			cryptors.ErrDuplicatePlug,
		},
		{
			"bad ground",
			"entries:\n  - {day: 1, reflector: B, rotors: [I, II, III], ground: A1C}\n",
			cryptors.ErrInvalidSymbol,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ks, err := keysheet.Load(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, ks)
		})
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := keysheet.Load(strings.NewReader("entries:\n  - {day: 1, reflector: B, rotors: [I, II, III], stecker: AB}\n"))
	assert.Error(t, err)

	_, err = keysheet.Load(strings.NewReader("entries: [1, 2"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "barbarossa.yaml")
	require.NoError(t, os.WriteFile(name, []byte(sheet), 0o600))

	ks, err := keysheet.LoadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "Barbarossa", ks.Name)

	_, err = keysheet.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
