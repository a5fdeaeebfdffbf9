// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/prodcon/storage"
)

// batch states
const (
	StatusPending   = "PENDING"
	StatusCommitted = "COMMITTED"
	StatusInvalid   = "INVALID"
	StatusUnknown   = "UNKNOWN"
)

// InvalidTransaction - reason a batch was rejected
type InvalidTransaction struct {
	Id      string `json:"id"`
	Message string `json:"message"`
}

// BatchStatus - progress of a submitted batch
type BatchStatus struct {
	Id                  string               `json:"id"`
	Status              string               `json:"status"`
	InvalidTransactions []InvalidTransaction `json:"invalid_transactions"`
}

type statusCache struct {
	c *cache.Cache
}

func newStatusCache(expiry time.Duration) *statusCache {
	return &statusCache{
		c: cache.New(expiry, 2*expiry),
	}
}

func (s *statusCache) set(status *BatchStatus) {
	s.c.Set(status.Id, status, cache.DefaultExpiration)
}

// pending only if not already known, returns false for a duplicate
//
// a pending entry stays until set records the decision, the expiry
// only starts from then
func (s *statusCache) addPending(id string) bool {
	err := s.c.Add(id, &BatchStatus{
		Id:                  id,
		Status:              StatusPending,
		InvalidTransactions: []InvalidTransaction{},
	}, cache.NoExpiration)
	return nil == err
}

func (s *statusCache) remove(id string) {
	s.c.Delete(id)
}

// recent results come from the cache, older commits from the database
func (s *statusCache) get(id string) *BatchStatus {
	if v, ok := s.c.Get(id); ok {
		return v.(*BatchStatus)
	}
	status := &BatchStatus{
		Id:                  id,
		Status:              StatusUnknown,
		InvalidTransactions: []InvalidTransaction{},
	}
	if committed, err := storage.Pool.Batches.Has([]byte(id)); nil == err && committed {
		status.Status = StatusCommitted
	}
	return status
}
