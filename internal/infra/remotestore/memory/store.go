// Package memory is an in-process RemoteStore. It keeps the whole tree as
// decoded JSON so reads and writes behave like the hosted database: null
// deletes, empty parents disappear and updates merge at the child level.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"jalsetu/internal/domain/repository"
	"jalsetu/internal/errors"
	"jalsetu/internal/infra/remotestore/paths"
)

// Op names a write operation.
type Op string

const (
	OpSet    Op = "set"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Write is one entry of the store's write log.
type Write struct {
	Op   Op
	Path string
}

type store struct {
	mu     sync.RWMutex
	root   map[string]any
	writes []Write
}

// Store is a RemoteStore that also exposes the write log.
type Store interface {
	repository.RemoteStore

	// Writes returns every write applied so far, in order.
	Writes() []Write
}

// NewStore creates an empty store.
func NewStore() Store {
	return &store{root: map[string]any{}}
}

func (s *store) Get(ctx context.Context, path string, dest any) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.RLock()
	node, ok := lookup(s.root, paths.Split(path))
	var raw []byte
	var err error
	if ok {
		raw, err = json.Marshal(node)
	}
	s.mu.RUnlock()

	if !ok {
		return errors.Wrapf(repository.ErrPathNotFound, "get %s", path)
	}
	if err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}

	return errors.Wrapf(json.Unmarshal(raw, dest), "decode %s", path)
}

func (s *store) List(ctx context.Context, path string) (map[string]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	children := map[string]json.RawMessage{}
	node, ok := lookup(s.root, paths.Split(path))
	if !ok {
		return children, nil
	}

	collection, ok := node.(map[string]any)
	if !ok {
		return nil, errors.Errorf("%s is not a collection", path)
	}

	for key, child := range collection {
		raw, err := json.Marshal(child)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s/%s", path, key)
		}
		children[key] = raw
	}

	return children, nil
}

func (s *store) Set(ctx context.Context, path string, value any) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	normalized, err := normalize(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.root = put(s.root, paths.Split(path), normalized)
	s.writes = append(s.writes, Write{Op: OpSet, Path: path})

	return nil
}

func (s *store) Update(ctx context.Context, path string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	normalized := make(map[string]any, len(fields))
	for key, value := range fields {
		v, err := normalize(value)
		if err != nil {
			return errors.Wrapf(err, "encode %s/%s", path, key)
		}
		normalized[key] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	base := paths.Split(path)
	for key, value := range normalized {
		segments := append(append([]string{}, base...), paths.Split(key)...)
		s.root = put(s.root, segments, value)
	}
	s.writes = append(s.writes, Write{Op: OpUpdate, Path: path})

	return nil
}

func (s *store) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.root = put(s.root, paths.Split(path), nil)
	s.writes = append(s.writes, Write{Op: OpDelete, Path: path})

	return nil
}

func (s *store) Writes() []Write {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Write(nil), s.writes...)
}

// normalize turns value into the generic form encoding/json decodes into.
func normalize(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func lookup(root map[string]any, segments []string) (any, bool) {
	var node any = root
	for _, segment := range segments {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		if node, ok = m[segment]; !ok {
			return nil, false
		}
	}

	if m, ok := node.(map[string]any); ok && len(m) == 0 {
		return nil, false
	}

	return node, node != nil
}

// put writes value at segments below node and returns the new node. A nil
// value removes the entry and prunes parents left empty.
func put(node map[string]any, segments []string, value any) map[string]any {
	if len(segments) == 0 {
		m, _ := value.(map[string]any)
		if m == nil {
			m = map[string]any{}
		}

		return m
	}

	if node == nil {
		node = map[string]any{}
	}

	key := segments[0]
	if len(segments) == 1 {
		if isEmpty(value) {
			delete(node, key)
		} else {
			node[key] = value
		}

		return node
	}

	child, _ := node[key].(map[string]any)
	child = put(child, segments[1:], value)
	if len(child) == 0 {
		delete(node, key)
	} else {
		node[key] = child
	}

	return node
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	m, ok := value.(map[string]any)

	return ok && len(m) == 0
}
