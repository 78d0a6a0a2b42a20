// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package store

import (
	"errors"
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode/vm/machine"
	"github.com/syndtr/goleveldb/leveldb"
	ldbstorage "github.com/syndtr/goleveldb/leveldb/storage"
	ldbutil "github.com/syndtr/goleveldb/leveldb/util"
)

// CHECKPOINT_PREFIX is prepended to the name of every stored checkpoint.
const CHECKPOINT_PREFIX = "checkpoint/"

// CheckpointStore persists named machine checkpoints in a LevelDB database,
// such that a blocked machine can be suspended in one process and resumed in
// another.
type CheckpointStore struct {
	db *leveldb.DB
}

// Open opens (or creates) a checkpoint store at the given path.  An empty path
// gives a store held entirely in memory.
func Open(path string) (*CheckpointStore, error) {
	var (
		db  *leveldb.DB
		err error
	)
	//
	if path == "" {
		db, err = leveldb.Open(ldbstorage.NewMemStorage(), nil)
	} else {
		db, err = leveldb.OpenFile(path, nil)
	}
	//
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint store at %s: %w", path, err)
	}
	//
	return &CheckpointStore{db}, nil
}

// Put stores a checkpoint under a given name, replacing any existing
// checkpoint of that name.
func (p *CheckpointStore) Put(name string, checkpoint *machine.Checkpoint) error {
	bytes, err := checkpoint.MarshalBinary()
	if err != nil {
		return fmt.Errorf("checkpoint %s: %w", name, err)
	}
	//
	return p.db.Put(key(name), bytes, nil)
}

// Get retrieves the checkpoint with a given name.  This returns false if no
// such checkpoint exists.
func (p *CheckpointStore) Get(name string) (*machine.Checkpoint, bool, error) {
	var checkpoint machine.Checkpoint
	//
	bytes, err := p.db.Get(key(name), nil)
	//
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("checkpoint %s: %w", name, err)
	} else if err = checkpoint.UnmarshalBinary(bytes); err != nil {
		return nil, false, fmt.Errorf("checkpoint %s: %w", name, err)
	}
	//
	return &checkpoint, true, nil
}

// Delete removes the checkpoint with a given name.  Deleting a checkpoint which
// does not exist is not an error.
func (p *CheckpointStore) Delete(name string) error {
	return p.db.Delete(key(name), nil)
}

// Names returns the names of all stored checkpoints in sorted order.
func (p *CheckpointStore) Names() ([]string, error) {
	var (
		names []string
		iter  = p.db.NewIterator(ldbutil.BytesPrefix([]byte(CHECKPOINT_PREFIX)), nil)
	)
	//
	defer iter.Release()
	//
	for iter.Next() {
		names = append(names, string(iter.Key()[len(CHECKPOINT_PREFIX):]))
	}
	//
	if err := iter.Error(); err != nil {
		return nil, err
	}
	//
	return names, nil
}

// Close this store, releasing the underlying database.
func (p *CheckpointStore) Close() error {
	return p.db.Close()
}

func key(name string) []byte {
	return []byte(CHECKPOINT_PREFIX + name)
}
