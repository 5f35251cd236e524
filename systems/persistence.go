package systems

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/quasilyte/gdata"
)

const recordsKey = "records"

// ItemStore is the key/value storage behind lap records. *gdata.Manager
// satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Records is the data stored on disk
type Records struct {
	// BestLaps is keyed by track and profile, see recordKey.
	BestLaps map[string]time.Duration `json:"bestLaps"`
	Profile  string                   `json:"profile"` // last driven profile
}

func recordKey(track, profile string) string {
	return track + "/" + profile
}

// BestLap returns the stored best lap, zero when none is stored.
func (r *Records) BestLap(track, profile string) time.Duration {
	return r.BestLaps[recordKey(track, profile)]
}

var store ItemStore

// InitPersistence opens the gdata manager for lap records
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open save data: %w", err)
	}
	store = m
	return nil
}

// SetItemStore replaces the record storage. A nil store disables persistence.
func SetItemStore(s ItemStore) {
	store = s
}

// LoadRecords loads records from storage. Without storage, or before anything
// was saved, it returns empty records.
func LoadRecords() (*Records, error) {
	records := &Records{BestLaps: map[string]time.Duration{}}
	if store == nil {
		return records, nil
	}

	data, err := store.LoadItem(recordsKey)
	if err != nil {
		return records, fmt.Errorf("load records: %w", err)
	}
	if len(data) == 0 {
		return records, nil
	}

	if err := json.Unmarshal(data, records); err != nil {
		return &Records{BestLaps: map[string]time.Duration{}}, fmt.Errorf("parse records: %w", err)
	}
	if records.BestLaps == nil {
		records.BestLaps = map[string]time.Duration{}
	}
	return records, nil
}

// SaveRecords writes records to storage
func SaveRecords(r *Records) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("serialize records: %w", err)
	}
	if err := store.SaveItem(recordsKey, data); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}

// RecordLap stores lap as the best time for track and profile when it beats
// the stored one. It reports whether a new record was written.
func RecordLap(profile, track string, lap time.Duration) (bool, error) {
	if lap <= 0 {
		return false, nil
	}
	records, err := LoadRecords()
	if err != nil {
		// A corrupt file is replaced rather than blocking new records
		logger.Warn().Err(err).Msg("discarding unreadable records")
	}

	key := recordKey(track, profile)
	best, ok := records.BestLaps[key]
	newBest := !ok || lap < best
	if newBest {
		records.BestLaps[key] = lap
	}
	if !newBest && records.Profile == profile {
		return false, nil
	}
	records.Profile = profile
	if err := SaveRecords(records); err != nil {
		return false, err
	}
	return newBest, nil
}

// StoredBestLap looks up the record for a track and profile, logging and
// returning zero on failure.
func StoredBestLap(track, profile string) time.Duration {
	records, err := LoadRecords()
	if err != nil {
		logger.Warn().Err(err).Msg("could not load lap records")
	}
	return records.BestLap(track, profile)
}
