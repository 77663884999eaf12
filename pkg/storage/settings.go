package storage

import (
	"context"
	"encoding/json"

	"github.com/rotisserie/eris"
	bolt "go.etcd.io/bbolt"
)

var settingsBucket = []byte("settings")

// Settings are remembered between alinfo runs.
type Settings struct {
	// LastDevice is the playback device the last successful "play" used.
	LastDevice string `json:"last_device"`
}

func GetSettings(ctx context.Context) (*Settings, error) {
	settings := new(Settings)
	err := view(ctx, func(tx *bolt.Tx) error {
		item := tx.Bucket(settingsBucket).Get([]byte("settings"))
		if item == nil {
			return nil
		}

		err := json.Unmarshal(item, settings)
		if err != nil {
			return eris.Wrap(err, "failed to deserialise settings")
		}

		return nil
	})
	return settings, err
}

func SaveSettings(ctx context.Context, settings *Settings) error {
	encoded, err := json.Marshal(settings)
	if err != nil {
		return eris.Wrap(err, "failed to serialise settings")
	}

	return update(ctx, func(tx *bolt.Tx) error {
		err := tx.Bucket(settingsBucket).Put([]byte("settings"), encoded)
		if err != nil {
			return eris.Wrap(err, "failed to save settings")
		}

		return nil
	})
}
