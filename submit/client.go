// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package submit - send batch lists to a ledger REST endpoint
//
// Submission is at most once: a failed request is reported to the
// caller and never retried.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bitmark-inc/prodcon/fault"
)

// DefaultTimeout - for each request
const DefaultTimeout = 30 * time.Second

// Client - REST client for one ledger endpoint
type Client struct {
	url    string
	client *http.Client
}

// Link - reply to an accepted submission
type Link struct {
	Link string `json:"link"`
}

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

// New - client for a base URL such as http://localhost:8008
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Batches - POST a serialized batch list to <url>/batches
func (c *Client) Batches(ctx context.Context, body []byte) (*Link, []byte, error) {
	request, err := http.NewRequest(http.MethodPost, c.url+"/batches", bytes.NewReader(body))
	if nil != err {
		return nil, nil, err
	}
	request.Header.Set("Content-Type", "application/octet-stream")

	data, err := c.do(ctx, request)
	if nil != err {
		return nil, data, err
	}

	link := &Link{}
	if err := json.Unmarshal(data, link); nil != err {
		// a gateway may reply with something other than the link
		return nil, data, nil
	}
	return link, data, nil
}

// Statuses - GET <url>/batch_statuses?id=a,b
func (c *Client) Statuses(ctx context.Context, ids []string) ([]BatchStatus, error) {
	query := url.Values{}
	query.Set("id", strings.Join(ids, ","))
	request, err := http.NewRequest(http.MethodGet, c.url+"/batch_statuses?"+query.Encode(), nil)
	if nil != err {
		return nil, err
	}

	data, err := c.do(ctx, request)
	if nil != err {
		return nil, err
	}

	var reply struct {
		Data []BatchStatus `json:"data"`
	}
	if err := json.Unmarshal(data, &reply); nil != err {
		return nil, fault.ProcessError("status decode: " + err.Error())
	}
	return reply.Data, nil
}

// State - GET <url>/state/<address>, false if the address is unset
func (c *Client) State(ctx context.Context, addr string) ([]byte, bool, error) {
	request, err := http.NewRequest(http.MethodGet, c.url+"/state/"+addr, nil)
	if nil != err {
		return nil, false, err
	}

	data, err := c.do(ctx, request)
	if e, ok := err.(*StatusError); ok && http.StatusNotFound == e.Code {
		return nil, false, nil
	}
	if nil != err {
		return nil, false, err
	}

	var reply struct {
		Data []byte `json:"data"`
	}
	if err := json.Unmarshal(data, &reply); nil != err {
		return nil, false, fault.ProcessError("state decode: " + err.Error())
	}
	return reply.Data, true, nil
}

// StatusError - HTTP status of 400 or above
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status: %d  body: %s", e.Code, e.Body)
}

func (c *Client) do(ctx context.Context, request *http.Request) ([]byte, error) {
	response, err := c.client.Do(request.WithContext(ctx))
	if nil != err {
		return nil, err
	}
	defer response.Body.Close()

	data, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return nil, err
	}

	if response.StatusCode >= http.StatusBadRequest {
		return data, &StatusError{
			Code: response.StatusCode,
			Body: strings.TrimSpace(string(data)),
		}
	}
	return data, nil
}
