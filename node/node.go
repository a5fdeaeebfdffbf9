// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - a single node ledger host for transaction handlers
//
// Batches are verified, applied in arrival order against the LevelDB
// state and committed atomically: either every transaction of a
// batch is written or none is.
package node

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/prodcon/envelope"
	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/handler"
	"github.com/bitmark-inc/prodcon/protocol"
	"github.com/bitmark-inc/prodcon/storage"
)

// defaults
const (
	DefaultQueueSize    = 1000
	DefaultStatusExpiry = 10 * time.Minute
)

// TransactionHandler - a family implementation hosted by the node
type TransactionHandler interface {
	FamilyName() string
	FamilyVersions() []string
	Namespaces() []string
	Apply(payload []byte, state handler.State) error
}

// Node - the ledger host
type Node struct {
	sync.Mutex
	log        *logger.L
	handlers   map[string]TransactionHandler
	submitLock sync.Mutex // capacity check and enqueue of one list
	queue      chan *protocol.Batch
	statuses   *statusCache
	metrics    *metrics
}

// New - create a node for a set of handlers
func New(log *logger.L, queueSize int, statusExpiry time.Duration, registerer prometheus.Registerer, handlers ...TransactionHandler) (*Node, error) {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if statusExpiry <= 0 {
		statusExpiry = DefaultStatusExpiry
	}

	m, err := newMetrics(registerer)
	if nil != err {
		return nil, err
	}

	n := &Node{
		log:      log,
		handlers: make(map[string]TransactionHandler),
		queue:    make(chan *protocol.Batch, queueSize),
		statuses: newStatusCache(statusExpiry),
		metrics:  m,
	}
	for _, h := range handlers {
		for _, version := range h.FamilyVersions() {
			n.handlers[handlerKey(h.FamilyName(), version)] = h
			log.Infof("registered family: %s  version: %s  namespaces: %v", h.FamilyName(), version, h.Namespaces())
		}
	}

	height, _, err := storage.Pool.Meta.GetN(storage.HeightKey)
	if nil != err {
		return nil, err
	}
	m.height.Set(float64(height))

	return n, nil
}

func handlerKey(name string, version string) string {
	return name + " " + version
}

// Submit - queue the batches of a list for processing
//
// returns the ids of the batches in the order given, either every new
// batch of the list is queued or none is
func (n *Node) Submit(batchList *protocol.BatchList) ([]string, error) {
	if 0 == len(batchList.Batches) {
		return nil, fault.ErrEmptyBatchList
	}

	n.submitLock.Lock()
	defer n.submitLock.Unlock()

	ids := make([]string, 0, len(batchList.Batches))
	fresh := make([]*protocol.Batch, 0, len(batchList.Batches))
	for _, batch := range batchList.Batches {
		id := batch.HeaderSignature
		ids = append(ids, id)

		// a resubmitted batch that is pending or recently decided is ignored
		if !n.statuses.addPending(id) {
			n.log.Debugf("duplicate submission: %s", id)
			continue
		}
		fresh = append(fresh, batch)
	}

	// only Run takes from the queue so the space cannot shrink here
	if len(fresh) > cap(n.queue)-len(n.queue) {
		for _, batch := range fresh {
			n.statuses.remove(batch.HeaderSignature)
		}
		n.log.Warnf("queue full, dropped: %d batches", len(fresh))
		return nil, fault.ErrQueueFull
	}
	for _, batch := range fresh {
		n.queue <- batch
	}
	return ids, nil
}

// Status - current status of a batch
func (n *Node) Status(id string) *BatchStatus {
	return n.statuses.get(id)
}

// Run - background process applying queued batches
func (n *Node) Run(args interface{}, shutdown <-chan struct{}) {
	log := n.log
	log.Info("starting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case batch := <-n.queue:
			status := n.ApplyBatch(batch)
			log.Debugf("batch: %s  status: %s", status.Id, status.Status)
		}
	}
	log.Info("stopped")
}

// ApplyBatch - verify and apply one batch synchronously
func (n *Node) ApplyBatch(batch *protocol.Batch) *BatchStatus {
	n.Lock()
	defer n.Unlock()

	status := n.applyBatch(batch)
	n.statuses.set(status)
	n.metrics.batches.WithLabelValues(status.Status).Inc()
	return status
}

func (n *Node) applyBatch(batch *protocol.Batch) *BatchStatus {
	id := batch.HeaderSignature
	status := &BatchStatus{
		Id:                  id,
		Status:              StatusInvalid,
		InvalidTransactions: []InvalidTransaction{},
	}

	committed, err := storage.Pool.Batches.Has([]byte(id))
	if nil != err {
		n.log.Errorf("batch: %s  lookup error: %s", id, err)
		return invalid(status, id, fault.InternalError(err.Error()))
	}
	if committed {
		status.Status = StatusCommitted
		return status
	}

	headers, err := envelope.VerifyBatch(batch)
	if nil != err {
		n.log.Warnf("batch: %s  rejected: %s", id, err)
		return invalid(status, id, err)
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return invalid(status, id, fault.InternalError(err.Error()))
	}

	for i, tx := range batch.Transactions {
		err := n.applyTransaction(trx, tx, headers[i], id)
		if nil != err {
			trx.Abort()
			n.metrics.transactions.WithLabelValues(StatusInvalid).Inc()
			if fault.IsErrInternal(err) {
				n.log.Errorf("batch: %s  transaction: %s  internal error: %s", id, tx.HeaderSignature, err)
			} else {
				n.log.Infof("batch: %s  transaction: %s  invalid: %s", id, tx.HeaderSignature, err)
			}
			return invalid(status, tx.HeaderSignature, err)
		}
	}

	height, _, err := storage.Pool.Meta.GetN(storage.HeightKey)
	if nil != err {
		trx.Abort()
		return invalid(status, id, fault.InternalError(err.Error()))
	}
	next := height + 1
	trx.PutN(storage.Pool.Batches, []byte(id), next)
	trx.PutN(storage.Pool.Meta, storage.HeightKey, next)

	err = trx.Commit()
	if nil != err {
		n.log.Errorf("batch: %s  commit error: %s", id, err)
		return invalid(status, id, fault.InternalError(err.Error()))
	}

	n.metrics.transactions.WithLabelValues(StatusCommitted).Add(float64(len(batch.Transactions)))
	n.metrics.height.Set(float64(next))

	status.Status = StatusCommitted
	return status
}

func (n *Node) applyTransaction(trx storage.Transaction, tx *protocol.Transaction, header *protocol.TransactionHeader, batchId string) error {
	h, ok := n.handlers[handlerKey(header.FamilyName, header.FamilyVersion)]
	if !ok {
		return fault.ErrUnknownFamily
	}

	seen, err := trx.Has(storage.Pool.Transactions, []byte(tx.HeaderSignature))
	if nil != err {
		return fault.InternalError(err.Error())
	}
	if seen {
		return fault.InvalidTransactionError("duplicate transaction")
	}

	c := newContext(trx, header.Inputs, header.Outputs, h.Namespaces())
	if err := h.Apply(tx.Payload, c); nil != err {
		return err
	}

	trx.Put(storage.Pool.Transactions, []byte(tx.HeaderSignature), []byte(batchId))
	return nil
}

func invalid(status *BatchStatus, id string, err error) *BatchStatus {
	status.Status = StatusInvalid
	status.InvalidTransactions = append(status.InvalidTransactions, InvalidTransaction{
		Id:      id,
		Message: err.Error(),
	})
	return status
}

// Balance - read a committed state value
func Balance(addr string) ([]byte, bool, error) {
	return storage.Pool.State.Get([]byte(addr))
}
