package storage

import "context"

// Memory is a map-backed Store. It backs tests and the degraded mode the
// engine falls into when the on-disk store cannot be opened.
type Memory struct {
	m map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{m: map[string][]byte{}}
}

func (s *Memory) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.m[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *Memory) Put(_ context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	s.m[key] = v
	return nil
}

func (s *Memory) Delete(_ context.Context, key string) error {
	delete(s.m, key)
	return nil
}

func (s *Memory) Close() error { return nil }
