// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/prodcon/envelope"
	"github.com/bitmark-inc/prodcon/family"
	"github.com/bitmark-inc/prodcon/handler"
	"github.com/bitmark-inc/prodcon/node"
	"github.com/bitmark-inc/prodcon/payload"
)

func do(t *testing.T, h http.Handler, method string, path string, body []byte) (int, []byte) {
	r := httptest.NewRequest(method, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	data, _ := ioutil.ReadAll(w.Result().Body)
	return w.Code, data
}

func TestRestBatches(t *testing.T) {
	n, b, registry := setup(t)
	defer teardown()

	s := node.NewServer(n, logger.New(category), node.RateLimit{PerSecond: 100, Burst: 100}, registry)
	router := s.Router()

	batchList, err := b.Build(payload.PRODUCE, "widget", 10)
	if nil != err {
		t.Fatalf("build error: %s", err)
	}
	body, _ := envelope.Encode(batchList)
	id := batchList.Batches[0].HeaderSignature

	code, data := do(t, router, http.MethodPost, "/batches", body)
	assert.Equal(t, http.StatusAccepted, code, "body: %s", data)

	var link struct {
		Link string `json:"link"`
	}
	assert.Nil(t, json.Unmarshal(data, &link))
	assert.Equal(t, "/batch_statuses?id="+id, link.Link)

	code, data = do(t, router, http.MethodGet, link.Link, nil)
	assert.Equal(t, http.StatusOK, code)
	var statuses struct {
		Data []node.BatchStatus `json:"data"`
	}
	assert.Nil(t, json.Unmarshal(data, &statuses))
	assert.Equal(t, node.StatusPending, statuses.Data[0].Status)

	// apply directly instead of starting the background process
	n.ApplyBatch(batchList.Batches[0])

	code, data = do(t, router, http.MethodGet, link.Link, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Nil(t, json.Unmarshal(data, &statuses))
	assert.Equal(t, node.StatusCommitted, statuses.Data[0].Status)

	addr := family.Default().Address("widget")
	code, data = do(t, router, http.MethodGet, "/state/"+addr, nil)
	assert.Equal(t, http.StatusOK, code)
	var entry struct {
		Address string `json:"address"`
		Data    []byte `json:"data"`
	}
	assert.Nil(t, json.Unmarshal(data, &entry))
	assert.Equal(t, addr, entry.Address)
	assert.Equal(t, handler.EncodeBalance(10), entry.Data)

	code, data = do(t, router, http.MethodGet, "/state?address="+family.Default().Prefix(), nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, strings.Contains(string(data), addr), "listing: %s", data)

	code, _ = do(t, router, http.MethodGet, "/state/"+family.Default().Address("gadget"), nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, router, http.MethodGet, "/state/xyz", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, data = do(t, router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, strings.Contains(string(data), "prodcon_batches_total"), "metrics: %s", data)
}

func TestRestErrors(t *testing.T) {
	n, _, registry := setup(t)
	defer teardown()

	router := node.NewServer(n, logger.New(category), node.RateLimit{PerSecond: 100, Burst: 100}, registry).Router()

	code, _ := do(t, router, http.MethodPost, "/batches", []byte{0xff, 0xff})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, router, http.MethodPost, "/batches", nil)
	assert.Equal(t, http.StatusBadRequest, code, "empty batch list")

	code, _ = do(t, router, http.MethodGet, "/batches", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, code)

	code, _ = do(t, router, http.MethodGet, "/batch_statuses", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, router, http.MethodGet, "/nothing", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRestRateLimit(t *testing.T) {
	n, b, registry := setup(t)
	defer teardown()

	s := node.NewServer(n, logger.New(category), node.RateLimit{PerSecond: 0.001, Burst: 1}, registry)
	router := s.Router()

	post := func() int {
		batchList, _ := b.Build(payload.PRODUCE, "widget", 1)
		body, _ := envelope.Encode(batchList)
		code, _ := do(t, router, http.MethodPost, "/batches", body)
		return code
	}

	assert.Equal(t, http.StatusAccepted, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	s.SetRateLimit(node.RateLimit{PerSecond: 1000, Burst: 10})
	assert.Equal(t, http.StatusAccepted, post())
}
