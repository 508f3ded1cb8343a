package chunk

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"cavegen/pkg/engine/world"
)

var bucketName = []byte("chunks")

// BoltStore is a Store kept in a bbolt database file, so the town survives
// between runs.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens or creates the chunk database at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open chunk store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create chunk bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Close releases the database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) Has(name string) bool {
	found := false
	_ = s.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket(bucketName).Get([]byte(name)) != nil
		return nil
	})
	return found
}

func (s *BoltStore) Load(name string) (*world.Cave, error) {
	var c *world.Cave
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketName).Get([]byte(name))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		var err error
		c, err = decode(data)
		return err
	})
	return c, err
}

func (s *BoltStore) Save(name string, c *world.Cave) error {
	data, err := encode(c)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(name), data)
	})
}
