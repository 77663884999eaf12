package storage

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/aidarkhanov/nanoid"
	"github.com/rotisserie/eris"
	bolt "go.etcd.io/bbolt"
)

var probesBucket = []byte("probes")

const (
	ProbeDevices = "devices"
	ProbeVersion = "version"
)

// Probe records what alinfo found when it inspected an OpenAL installation.
type Probe struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Kind     string    `json:"kind"`
	Library  string    `json:"library"`
	Devices  []string  `json:"devices,omitempty"`
	Captures []string  `json:"captures,omitempty"`
	Default  string    `json:"default,omitempty"`
	Vendor   string    `json:"vendor,omitempty"`
	Renderer string    `json:"renderer,omitempty"`
	Version  string    `json:"version,omitempty"`
}

// SaveProbe stores probe. ID and Time are filled in if they're empty.
func SaveProbe(ctx context.Context, probe *Probe) error {
	if probe.ID == "" {
		probe.ID = nanoid.New()
	}
	if probe.Time.IsZero() {
		probe.Time = time.Now()
	}

	encoded, err := json.Marshal(probe)
	if err != nil {
		return eris.Wrap(err, "failed to serialise probe")
	}

	return update(ctx, func(tx *bolt.Tx) error {
		err := tx.Bucket(probesBucket).Put([]byte(probe.ID), encoded)
		if err != nil {
			return eris.Wrapf(err, "failed to save probe %s", probe.ID)
		}

		return nil
	})
}

func GetProbe(ctx context.Context, id string) (*Probe, error) {
	var probe *Probe
	err := view(ctx, func(tx *bolt.Tx) error {
		item := tx.Bucket(probesBucket).Get([]byte(id))
		if item == nil {
			return eris.Errorf("probe %s not found", id)
		}

		probe = new(Probe)
		err := json.Unmarshal(item, probe)
		if err != nil {
			return eris.Wrapf(err, "failed to deserialise probe %s", id)
		}

		return nil
	})
	return probe, err
}

// ListProbes returns up to limit probes, newest first. A limit <= 0 returns all of them.
func ListProbes(ctx context.Context, limit int) ([]*Probe, error) {
	probes := make([]*Probe, 0)
	err := view(ctx, func(tx *bolt.Tx) error {
		return tx.Bucket(probesBucket).ForEach(func(k, v []byte) error {
			probe := new(Probe)
			err := json.Unmarshal(v, probe)
			if err != nil {
				return eris.Wrapf(err, "failed to deserialise probe %s", k)
			}

			probes = append(probes, probe)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(probes, func(i, j int) bool {
		return probes[i].Time.After(probes[j].Time)
	})

	if limit > 0 && len(probes) > limit {
		probes = probes[:limit]
	}
	return probes, nil
}

// ClearProbes deletes the whole history.
func ClearProbes(ctx context.Context) error {
	return update(ctx, func(tx *bolt.Tx) error {
		err := tx.DeleteBucket(probesBucket)
		if err != nil {
			return eris.Wrap(err, "failed to clear probes")
		}

		_, err = tx.CreateBucket(probesBucket)
		return eris.Wrap(err, "failed to recreate probes bucket")
	})
}
