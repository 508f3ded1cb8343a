package chunk

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"

	"cavegen/pkg/engine/world"
)

// ErrNotFound is returned when no chunk is stored under a name.
var ErrNotFound = errors.New("chunk not found")

// Store keeps named chunks between generations.
type Store interface {
	Has(name string) bool
	Load(name string) (*world.Cave, error)
	Save(name string, c *world.Cave) error
}

// MemoryStore is a Store that lives as long as the process.
type MemoryStore struct {
	chunks map[string]*world.Cave
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{chunks: make(map[string]*world.Cave)}
}

func (s *MemoryStore) Has(name string) bool {
	_, ok := s.chunks[name]
	return ok
}

func (s *MemoryStore) Load(name string) (*world.Cave, error) {
	c, ok := s.chunks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return Write(c, 0, 0, c.Height, c.Width)
}

func (s *MemoryStore) Save(name string, c *world.Cave) error {
	snap, err := Write(c, 0, 0, c.Height, c.Width)
	if err != nil {
		return err
	}
	s.chunks[name] = snap
	return nil
}

// snapshot is the stored form of a chunk.
type snapshot struct {
	Name   string
	Depth  int
	Height int
	Width  int
	Feat   []world.Feature
	Info   []world.SquareFlag
}

func encode(c *world.Cave) ([]byte, error) {
	snap := snapshot{
		Name:   c.Name,
		Depth:  c.Depth,
		Height: c.Height,
		Width:  c.Width,
		Feat:   make([]world.Feature, 0, c.Height*c.Width),
		Info:   make([]world.SquareFlag, 0, c.Height*c.Width),
	}
	c.ForEach(func(y, x int) {
		snap.Feat = append(snap.Feat, c.Feat(y, x))
		snap.Info = append(snap.Info, c.Info(y, x))
	})
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&snap); err != nil {
		return nil, fmt.Errorf("failed to encode chunk: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (*world.Cave, error) {
	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode chunk: %w", err)
	}
	if snap.Height <= 0 || snap.Width <= 0 || len(snap.Feat) != snap.Height*snap.Width || len(snap.Info) != len(snap.Feat) {
		return nil, fmt.Errorf("corrupt chunk %q: %dx%d with %d grids", snap.Name, snap.Height, snap.Width, len(snap.Feat))
	}
	c := world.NewCave(snap.Height, snap.Width)
	c.Name = snap.Name
	c.Depth = snap.Depth
	i := 0
	c.ForEach(func(y, x int) {
		c.SetFeat(y, x, snap.Feat[i])
		c.On(y, x, snap.Info[i])
		i++
	})
	return c, nil
}
