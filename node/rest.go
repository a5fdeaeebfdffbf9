// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/prodcon/address"
	"github.com/bitmark-inc/prodcon/envelope"
	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/ratelimit"
	"github.com/bitmark-inc/prodcon/storage"
)

// limits
const (
	maximumBodySize    = 10 * 1024 * 1024
	maximumBatches     = 100
	maximumStateList   = 1000
	maximumLimiterWait = 2 * time.Second
)

// RateLimit - ingestion rate for POST /batches
type RateLimit struct {
	PerSecond float64 `gluamapper:"per_second" json:"per_second"`
	Burst     int     `gluamapper:"burst" json:"burst"`
}

// Server - REST front end of a node
type Server struct {
	node     *Node
	log      *logger.L
	limiter  *rate.Limiter
	gatherer prometheus.Gatherer
}

// NewServer - create the REST handlers
func NewServer(n *Node, log *logger.L, limit RateLimit, gatherer prometheus.Gatherer) *Server {
	return &Server{
		node:     n,
		log:      log,
		limiter:  rate.NewLimiter(rate.Limit(limit.PerSecond), limit.Burst),
		gatherer: gatherer,
	}
}

// SetRateLimit - change the ingestion rate without restarting
func (s *Server) SetRateLimit(limit RateLimit) {
	s.limiter.SetLimit(rate.Limit(limit.PerSecond))
	s.limiter.SetBurst(limit.Burst)
	s.log.Infof("rate limit: %g/s  burst: %d", limit.PerSecond, limit.Burst)
}

// Router - all endpoints
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/batches", s.batches).Methods(http.MethodPost)
	r.HandleFunc("/batch_statuses", s.batchStatuses).Methods(http.MethodGet)
	r.HandleFunc("/state", s.stateList).Methods(http.MethodGet)
	r.HandleFunc("/state/{address}", s.state).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendNotFound(w)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendMethodNotAllowed(w)
	})
	return r
}

type linkReply struct {
	Link string `json:"link"`
}

// POST /batches
func (s *Server) batches(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maximumBodySize))
	if nil != err {
		sendError(w, "request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	batchList, err := envelope.DecodeBatchList(body)
	if nil != err {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = ratelimit.LimitN(s.limiter, len(batchList.Batches), maximumBatches, maximumLimiterWait)
	if fault.ErrInvalidCount == err {
		sendError(w, "too many batches", http.StatusBadRequest)
		return
	} else if nil != err {
		sendError(w, err.Error(), http.StatusTooManyRequests)
		return
	}

	ids, err := s.node.Submit(batchList)
	if nil != err {
		s.log.Warnf("submit error: %s", err)
		sendError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	s.log.Debugf("accepted batches: %v", ids)
	sendReplyStatus(w, linkReply{
		Link: "/batch_statuses?id=" + strings.Join(ids, ","),
	}, http.StatusAccepted)
}

type statusReply struct {
	Data []*BatchStatus `json:"data"`
}

// GET /batch_statuses?id=a,b
func (s *Server) batchStatuses(w http.ResponseWriter, r *http.Request) {
	ids := splitIds(r.URL.Query().Get("id"))
	if 0 == len(ids) {
		sendError(w, "id is required", http.StatusBadRequest)
		return
	}
	if len(ids) > maximumBatches {
		sendError(w, "too many ids", http.StatusBadRequest)
		return
	}

	reply := statusReply{
		Data: make([]*BatchStatus, len(ids)),
	}
	for i, id := range ids {
		reply.Data[i] = s.node.Status(id)
	}
	sendReply(w, reply)
}

type stateEntry struct {
	Address string `json:"address"`
	Data    []byte `json:"data"`
}

// GET /state/{address}
func (s *Server) state(w http.ResponseWriter, r *http.Request) {
	addr := mux.Vars(r)["address"]
	if !address.IsValid(addr) {
		sendError(w, "invalid address", http.StatusBadRequest)
		return
	}

	value, found, err := Balance(addr)
	if nil != err {
		s.log.Errorf("state: %s  error: %s", addr, err)
		sendInternalServerError(w)
		return
	}
	if !found {
		sendNotFound(w)
		return
	}
	sendReply(w, stateEntry{Address: addr, Data: value})
}

type stateListReply struct {
	Data []stateEntry `json:"data"`
}

// GET /state?address=prefix
func (s *Server) stateList(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("address")

	elements, err := storage.Pool.State.List([]byte(prefix), maximumStateList)
	if nil != err {
		s.log.Errorf("state list: %q  error: %s", prefix, err)
		sendInternalServerError(w)
		return
	}

	reply := stateListReply{
		Data: make([]stateEntry, len(elements)),
	}
	for i, e := range elements {
		reply.Data[i] = stateEntry{Address: string(e.Key), Data: e.Value}
	}
	sendReply(w, reply)
}

func splitIds(s string) []string {
	ids := make([]string, 0, 8)
	for _, id := range strings.Split(s, ",") {
		id = strings.TrimSpace(id)
		if "" != id {
			ids = append(ids, id)
		}
	}
	return ids
}

func sendReply(w http.ResponseWriter, data interface{}) {
	sendReplyStatus(w, data, http.StatusOK)
}

func sendReplyStatus(w http.ResponseWriter, data interface{}, code int) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	w.Write(text)
}

func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	w.Write(text)
}
