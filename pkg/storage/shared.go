package storage

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	bolt "go.etcd.io/bbolt"
)

type txCtxKey struct{}

var (
	db *bolt.DB

	ErrNotOpen = eris.New("state DB is not open")
)

// Open opens (and if necessary creates) the state DB at path.
func Open(ctx context.Context, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return eris.Wrapf(err, "failed to create %s", filepath.Dir(path))
	}

	newDB, err := bolt.Open(path, 0o600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return eris.Wrap(err, "failed to open state DB")
	}

	buckets := [][]byte{probesBucket, settingsBucket}
	err = newDB.Update(func(tx *bolt.Tx) error {
		for _, bucket := range buckets {
			_, err := tx.CreateBucketIfNotExists(bucket)
			if err != nil {
				return eris.Wrapf(err, "failed to create bucket %s", bucket)
			}
		}

		return nil
	})
	if err != nil {
		newDB.Close()
		return err
	}

	db = newDB
	return nil
}

func Close(ctx context.Context) {
	if db != nil {
		db.Close()
		db = nil
	}
}

func CtxWithTx(ctx context.Context, tx *bolt.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

func TxFromCtx(ctx context.Context) *bolt.Tx {
	val := ctx.Value(txCtxKey{})
	if val == nil {
		return nil
	}

	tx, ok := val.(*bolt.Tx)
	if !ok {
		panic("wrong transaction type in context")
	}

	return tx
}

func view(ctx context.Context, cb func(*bolt.Tx) error) error {
	tx := TxFromCtx(ctx)
	if tx != nil {
		return cb(tx)
	}

	if db == nil {
		return ErrNotOpen
	}
	return db.View(cb)
}

func update(ctx context.Context, cb func(*bolt.Tx) error) error {
	tx := TxFromCtx(ctx)
	if tx != nil {
		return cb(tx)
	}

	if db == nil {
		return ErrNotOpen
	}
	return db.Update(cb)
}

func BatchUpdate(ctx context.Context, callback func(context.Context) error) error {
	if db == nil {
		return ErrNotOpen
	}

	return db.Batch(func(tx *bolt.Tx) error {
		return callback(CtxWithTx(ctx, tx))
	})
}
