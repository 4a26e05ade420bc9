// record saves computed free energies in a bolt database so they can
// be looked up later without recomputing.
package record

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the global logging variable.
var log = logging.MustGetLogger("record")

// MAIN is the bucket name for all results.
var MAIN = []byte("results")

// Result stores a computed duplex free energy together with the
// sequence and the conditions it was computed for.
type Result struct {
	Sequence    string
	Temperature float64
	SaltConc    float64
	DeltaG      float64
	Time        time.Time
}

// Key returns the database key of a result.
func (r *Result) Key() []byte {
	return []byte(fmt.Sprintf("%s@%g,%g", r.Sequence, r.Temperature, r.SaltConc))
}

// ResultIO provides saving and loading of results. A nil database
// turns all the operations into no-ops.
type ResultIO struct {
	db *bolt.DB
}

// NewResultIO creates a new ResultIO.
func NewResultIO(db *bolt.DB) (s *ResultIO) {
	s = &ResultIO{
		db: db,
	}
	return
}

// Save saves a result to the database.
func (s *ResultIO) Save(res *Result) error {
	dataB, err := json.Marshal(res)
	if err != nil {
		log.Error("Error serializing result", err)
		return err
	}
	err = SaveData(s.db, res.Key(), dataB)
	if err != nil {
		log.Error("Error saving result", err)
	}
	return err
}

// Get returns the recorded result for a sequence and conditions, nil
// if there is none.
func (s *ResultIO) Get(sequence string, temperature, saltConc float64) (*Result, error) {
	var res *Result

	key := (&Result{Sequence: sequence, Temperature: temperature, SaltConc: saltConc}).Key()
	b, err := LoadData(s.db, key)

	if err != nil || b == nil {
		return nil, err
	}

	err = json.Unmarshal(b, &res)

	if err != nil {
		return nil, err
	}

	if res != nil {
		log.Noticef("Found a recorded result (dG=%v, saved %v)", res.DeltaG, res.Time.Format(time.RFC3339))
	}

	return res, nil
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(MAIN)
		if err != nil {
			return err
		}

		err = b.Put(key, data)
		return err
	})
	return err
}

// LoadData loads data from bolt database.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(MAIN)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
