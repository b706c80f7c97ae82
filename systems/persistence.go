package systems

import (
	"encoding/json"
	"errors"
	"fmt"

	cfg "github.com/automoto/jumpcore/config"
	"github.com/quasilyte/gdata"
	log "github.com/sirupsen/logrus"
)

// ErrNoSnapshot is returned when a named snapshot was never saved.
var ErrNoSnapshot = errors.New("no saved snapshot")

// itemPrefix keeps snapshot items apart from anything else in the store.
const itemPrefix = "snapshot_"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for snapshot storage.
func InitPersistence() error {
	if gdataManager != nil {
		return nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.AppName,
	})
	if err != nil {
		log.WithError(err).Warn("Could not initialize persistence")
		return fmt.Errorf("open snapshot store: %w", err)
	}
	gdataManager = m
	return nil
}

// SaveSnapshot stores a snapshot under name.
func SaveSnapshot(name string, snap *Snapshot) error {
	if err := InitPersistence(); err != nil {
		return err
	}

	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(itemPrefix+name, data); err != nil {
		return fmt.Errorf("save snapshot %s: %w", name, err)
	}
	log.WithFields(log.Fields{"name": name, "bodies": len(snap.Bodies)}).Info("Snapshot saved")
	return nil
}

// LoadSnapshot reads the snapshot stored under name.
func LoadSnapshot(name string) (*Snapshot, error) {
	if err := InitPersistence(); err != nil {
		return nil, err
	}

	key := itemPrefix + name
	if !gdataManager.ItemExists(key) {
		return nil, fmt.Errorf("%w: %s", ErrNoSnapshot, name)
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", name, err)
	}
	return DecodeSnapshot(data)
}

// EncodeSnapshot serializes a snapshot for storage.
func EncodeSnapshot(snap *Snapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("serialize snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses stored snapshot bytes.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}
