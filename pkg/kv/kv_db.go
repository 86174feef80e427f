package kv

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/lintang-b-s/modalroute/pkg/datastructure"

	"github.com/dgraph-io/badger/v4"
	"github.com/uber/h3-go/v4"
)

var (
	ErrCitiesNotFound = errors.New("cities not found")
)

const (
	// cell edge ~60km, city networks are sparse
	h3Resolution = 3
	maxDiskLevel = 10
	batchSize    = 1000
)

// KVDB is a location index of cities keyed by the h3 cell that contains them.
type KVDB struct {
	db *badger.DB
}

func NewKVDB(db *badger.DB) *KVDB {
	return &KVDB{db}
}

// OpenKVDB opens badger at dir, or an in-memory instance when dir is empty.
func OpenKVDB(dir string) (*KVDB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return NewKVDB(db), nil
}

func cellOf(lat, lon float64) h3.Cell {
	return h3.LatLngToCell(h3.NewLatLng(lat, lon), h3Resolution)
}

// BuildH3IndexedCities groups the cities that have a location by h3 cell and saves each
// group under its cell key. Cities without location are skipped.
func (k *KVDB) BuildH3IndexedCities(ctx context.Context, cities []datastructure.City) error {
	log.Printf("creating & saving h3 indexed cities to key-value db...")

	kv := make(map[string][]kvCity)
	for _, city := range cities {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !city.HasLocation() {
			continue
		}

		cell := cellOf(city.Location.Lat, city.Location.Lon)
		kv[cell.String()] = append(kv[cell.String()], newKVCity(city))
	}

	batches := make([]batchData, 0, batchSize)
	for key, value := range kv {
		batches = append(batches, batchData{
			key:   key,
			value: value,
		})
		if len(batches) == batchSize {
			if err := k.saveBatchCities(ctx, batches); err != nil {
				return err
			}
			batches = make([]batchData, 0, batchSize)
		}
	}

	if len(batches) > 0 {
		if err := k.saveBatchCities(ctx, batches); err != nil {
			return err
		}
	}

	log.Printf("creating & saving h3 indexed cities to key-value db done, %d cells", len(kv))
	return nil
}

type batchData struct {
	key   string
	value []kvCity
}

func (k *KVDB) saveBatchCities(ctx context.Context, batchData []batchData) error {
	batch := k.db.NewWriteBatch()
	defer batch.Cancel()

	for _, data := range batchData {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		val, err := encodeCities(data.value)
		if err != nil {
			return err
		}

		if err := batch.Set([]byte(data.key), val); err != nil {
			return err
		}
	}

	if err := batch.Flush(); err != nil {
		log.Printf("error saving cities: %v", err)
		return err
	}
	return nil
}

// get returns nil without error when the key does not exist.
func (k *KVDB) get(key []byte) ([]byte, error) {
	var val []byte
	err := k.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	return val, err
}

func (k *KVDB) getCell(cell h3.Cell) ([]datastructure.City, error) {
	val, err := k.get([]byte(cell.String()))
	if err != nil {
		return nil, err
	}

	stored, err := decodeCities(val)
	if err != nil {
		return nil, err
	}

	cities := make([]datastructure.City, 0, len(stored))
	for _, c := range stored {
		cities = append(cities, c.toCity())
	}
	return cities, nil
}

// GetNearestCitiesFromPointCoord searches grid disks of growing radius around the h3 cell
// of the point. Once a city is found it also reads the next ring, since a city just across
// a cell border can be closer than the ones in the ring that hit first.
func (k *KVDB) GetNearestCitiesFromPointCoord(lat, lon float64) ([]datastructure.City, error) {
	cell := cellOf(lat, lon)

	cities := make([]datastructure.City, 0)
	visited := make(map[h3.Cell]bool)
	stopAt := -1
	for lev := 0; lev <= maxDiskLevel; lev++ {
		for _, currCell := range h3.GridDisk(cell, lev) {
			if visited[currCell] {
				continue
			}
			visited[currCell] = true

			found, err := k.getCell(currCell)
			if err != nil {
				return nil, err
			}
			cities = append(cities, found...)
		}

		if stopAt == -1 && len(cities) > 0 {
			stopAt = lev + 1
		}
		if stopAt != -1 && lev >= stopAt {
			break
		}
	}

	if len(cities) == 0 {
		return nil, ErrCitiesNotFound
	}

	return cities, nil
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
