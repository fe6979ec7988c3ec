package persist

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

const (
	DefaultBucket = "restodesk"
	DefaultKey    = "restaurantData"
)

// ErrSlotEmpty is returned by Load when nothing has been saved yet.
var ErrSlotEmpty = errors.New("durable slot is empty")

// Slot is a single named durable value holding the serialized snapshot.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
	Close() error
}

// BoltSlot keeps the snapshot under one key of a bbolt bucket.
type BoltSlot struct {
	db     *bolt.DB
	bucket []byte
	key    []byte
}

// OpenBoltSlot opens (creating if needed) the bbolt file at path.
func OpenBoltSlot(path, bucket, key string) (*BoltSlot, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}
	if key == "" {
		key = DefaultKey
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bolt slot %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "create bucket %s", bucket)
	}
	return &BoltSlot{db: db, bucket: []byte(bucket), key: []byte(key)}, nil
}

func (s *BoltSlot) Load(_ context.Context) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return ErrSlotEmpty
		}
		v := b.Get(s.key)
		if v == nil {
			return ErrSlotEmpty
		}
		// v is only valid inside the transaction
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotEmpty) {
			return nil, ErrSlotEmpty
		}
		return nil, errors.Wrap(err, "load bolt slot")
	}
	return data, nil
}

func (s *BoltSlot) Save(_ context.Context, data []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		return b.Put(s.key, data)
	})
	return errors.Wrap(err, "save bolt slot")
}

func (s *BoltSlot) Clear(_ context.Context) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		return b.Delete(s.key)
	})
	return errors.Wrap(err, "clear bolt slot")
}

func (s *BoltSlot) Close() error {
	return s.db.Close()
}

// MemorySlot is an in-process Slot. LoadErr and SaveErr, when set, are
// returned instead of touching the data.
type MemorySlot struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	LoadErr error
	SaveErr error
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (s *MemorySlot) Load(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.data == nil {
		return nil, ErrSlotEmpty
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemorySlot) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.data = append([]byte(nil), data...)
	s.saves++
	return nil
}

func (s *MemorySlot) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}

func (s *MemorySlot) Close() error { return nil }

// Saves reports how many writes succeeded.
func (s *MemorySlot) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
