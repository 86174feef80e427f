package datastructure

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the transport category of a route. Every edge carries exactly one mode
// and every shortest path query is restricted to one mode.
type Mode uint8

const (
	Train Mode = iota
	Car
	Airplane
)

var (
	ErrInvalidMode = errors.New("invalid transportation mode")
)

var modeNames = [...]string{
	Train:    "train",
	Car:      "car",
	Airplane: "airplane",
}

// AllModes returns the closed set of modes in their numeric order.
func AllModes() []Mode {
	return []Mode{Train, Car, Airplane}
}

func (m Mode) Valid() bool {
	return int(m) < len(modeNames)
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// Title is the display form used by the console output, e.g. "Train".
func (m Mode) Title() string {
	s := m.String()
	if !m.Valid() {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseMode accepts the mode name (case-insensitive) or its numeric index ("0", "1", "2").
func ParseMode(s string) (Mode, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if in == name || in == fmt.Sprint(i) {
			return Mode(i), nil
		}
	}
	switch in {
	case "plane", "air", "flight":
		return Airplane, nil
	case "rail":
		return Train, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
