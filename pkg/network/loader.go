package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelindar/binary"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported network file format")
)

type Format int

const (
	FormatJSON Format = iota
	FormatBinary
	FormatCompressedBinary
)

// FormatFromPath picks the format from the file extension: .json, .bin, or .zst / .bin.zst.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".bin":
		return FormatBinary, nil
	case ".zst":
		return FormatCompressedBinary, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// binaryCity flattens the optional location for the binary codec.
type binaryCity struct {
	ID          int32
	Name        string
	HasLocation bool
	Lat         float64
	Lon         float64
}

type binaryDefinition struct {
	Cities []binaryCity
	Routes []RouteDefinition
}

func toBinaryDefinition(d Definition) binaryDefinition {
	bd := binaryDefinition{
		Cities: make([]binaryCity, 0, len(d.Cities)),
		Routes: d.Routes,
	}
	for _, c := range d.Cities {
		bc := binaryCity{ID: c.ID, Name: c.Name}
		if c.Lat != nil && c.Lon != nil {
			bc.HasLocation = true
			bc.Lat = *c.Lat
			bc.Lon = *c.Lon
		}
		bd.Cities = append(bd.Cities, bc)
	}
	return bd
}

func (bd binaryDefinition) toDefinition() Definition {
	d := Definition{
		Cities: make([]CityDefinition, 0, len(bd.Cities)),
		Routes: bd.Routes,
	}
	for _, bc := range bd.Cities {
		c := CityDefinition{ID: bc.ID, Name: bc.Name}
		if bc.HasLocation {
			lat, lon := bc.Lat, bc.Lon
			c.Lat = &lat
			c.Lon = &lon
		}
		d.Cities = append(d.Cities, c)
	}
	return d
}

func Encode(d Definition, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(d, "", "  ")
	case FormatBinary:
		return binary.Marshal(toBinaryDefinition(d))
	case FormatCompressedBinary:
		bb, err := binary.Marshal(toBinaryDefinition(d))
		if err != nil {
			return nil, err
		}
		return compress(bb)
	}
	return nil, ErrUnsupportedFormat
}

func Decode(bb []byte, format Format) (Definition, error) {
	var d Definition
	switch format {
	case FormatJSON:
		err := json.Unmarshal(bb, &d)
		return d, err
	case FormatCompressedBinary:
		var err error
		bb, err = decompress(bb)
		if err != nil {
			return d, fmt.Errorf("decompress network: %w", err)
		}
		fallthrough
	case FormatBinary:
		var bd binaryDefinition
		if err := binary.Unmarshal(bb, &bd); err != nil {
			return d, err
		}
		return bd.toDefinition(), nil
	}
	return d, ErrUnsupportedFormat
}

func LoadDefinition(path string) (Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Definition{}, err
	}

	bb, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read network file: %w", err)
	}

	d, err := Decode(bb, format)
	if err != nil {
		return Definition{}, fmt.Errorf("decode network file %s: %w", path, err)
	}
	return d, nil
}

func WriteDefinition(path string, d Definition) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	bb, err := Encode(d, format)
	if err != nil {
		return fmt.Errorf("encode network: %w", err)
	}

	return os.WriteFile(path, bb, 0644)
}

// Load reads and builds the network at path. An empty path gives the reference network.
func Load(path string) (*Network, error) {
	if path == "" {
		log.Printf("no network file given, using the reference network")
		return Reference(), nil
	}

	log.Printf("reading network file %s", path)
	d, err := LoadDefinition(path)
	if err != nil {
		return nil, err
	}

	n, err := Build(d)
	if err != nil {
		return nil, err
	}
	log.Printf("network loaded: %d cities, %d directed edges", n.NumCities(), n.Graph().NumEdges())
	return n, nil
}
