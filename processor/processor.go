// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - host transaction handlers behind a validator
//
// The processor registers its handlers with a validator, then serves
// process requests one at a time. State reads and writes made by a
// handler become requests on the same connection scoped to the
// context of the transaction being processed.
package processor

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/handler"
	"github.com/bitmark-inc/prodcon/protocol"
	"github.com/bitmark-inc/prodcon/zmqutil"
)

// defaults
const (
	DefaultValidator = "tcp://localhost:4004"
	DefaultTimeout   = 30 * time.Second

	protocolVersion = 1
	maxOccupancy    = 1 // requests are served one at a time
	pollInterval    = 500 * time.Millisecond
	retryInterval   = 5 * time.Second
)

// TransactionHandler - a family implementation served by the processor
type TransactionHandler interface {
	FamilyName() string
	FamilyVersions() []string
	Namespaces() []string
	Apply(payload []byte, state handler.State) error
}

// Processor - connection to a validator and the handlers it serves
type Processor struct {
	log      *logger.L
	address  string
	timeout  time.Duration
	handlers map[string]TransactionHandler
	list     []TransactionHandler
	conn     *zmqutil.Connection
}

// New - create a processor for a validator endpoint
func New(log *logger.L, address string, timeout time.Duration, handlers ...TransactionHandler) *Processor {
	if "" == address {
		address = DefaultValidator
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	p := &Processor{
		log:      log,
		address:  address,
		timeout:  timeout,
		handlers: make(map[string]TransactionHandler),
		list:     handlers,
	}
	for _, h := range handlers {
		for _, version := range h.FamilyVersions() {
			p.handlers[h.FamilyName()+" "+version] = h
		}
	}
	return p
}

// Run - background process: connect, register and serve until shutdown
func (p *Processor) Run(args interface{}, shutdown <-chan struct{}) {
	log := p.log
	log.Info("starting…")

connect:
	for {
		err := p.start()
		if nil == err {
			err = p.serve(shutdown)
			if nil == err {
				break connect
			}
			log.Errorf("serve error: %s", err)
		} else {
			log.Errorf("validator: %s  error: %s", p.address, err)
		}
		p.close()

		select {
		case <-shutdown:
			log.Info("stopped")
			return
		case <-time.After(retryInterval):
		}
		log.Infof("reconnecting to: %s", p.address)
	}

	p.stop()
	log.Info("stopped")
}

// connect and register every handler version
func (p *Processor) start() error {
	conn, err := zmqutil.NewConnection(p.address)
	if nil != err {
		return err
	}
	p.conn = conn

	for _, h := range p.list {
		for _, version := range h.FamilyVersions() {
			request := &protocol.TpRegisterRequest{
				Family:             h.FamilyName(),
				Version:            version,
				Namespaces:         h.Namespaces(),
				MaxOccupancy:       maxOccupancy,
				ProtocolVersion:    protocolVersion,
				RequestHeaderStyle: protocol.TpRegisterRequest_EXPANDED,
			}
			response := &protocol.TpRegisterResponse{}
			err := conn.Request(protocol.Message_TP_REGISTER_REQUEST, request, protocol.Message_TP_REGISTER_RESPONSE, response, p.timeout)
			if nil != err {
				return err
			}
			if protocol.TpRegisterResponse_OK != response.Status {
				return fault.ProcessError(fault.ErrRegistrationFailed.Error() + ": " + h.FamilyName() + " " + version)
			}
			p.log.Infof("registered: %s %s  namespaces: %v", h.FamilyName(), version, h.Namespaces())
		}
	}
	return nil
}

// process messages strictly in arrival order
//
// returns nil only on shutdown, any other error needs a new connection
func (p *Processor) serve(shutdown <-chan struct{}) error {
	for {
		select {
		case <-shutdown:
			return nil
		default:
		}

		message, err := p.conn.Receive(pollInterval)
		if fault.ErrTimeout == err {
			continue
		}
		if fault.IsErrEncoding(err) {
			p.log.Warnf("dropped frame: %s", err)
			continue
		}
		if nil != err {
			return err
		}

		switch message.MessageType {
		case protocol.Message_TP_PROCESS_REQUEST:
			response := p.process(message.Content)
			err = p.conn.Reply(protocol.Message_TP_PROCESS_RESPONSE, message.CorrelationId, response)

		case protocol.Message_PING_REQUEST:
			err = p.conn.Reply(protocol.Message_PING_RESPONSE, message.CorrelationId, &protocol.PingResponse{})

		default:
			p.log.Warnf("ignored message: %s  id: %s", message.MessageType, message.CorrelationId)
		}
		if nil != err {
			return err
		}
	}
}

// unregister and disconnect
func (p *Processor) stop() {
	if nil == p.conn {
		return
	}
	response := &protocol.TpUnregisterResponse{}
	err := p.conn.Request(protocol.Message_TP_UNREGISTER_REQUEST, &protocol.TpUnregisterRequest{}, protocol.Message_TP_UNREGISTER_RESPONSE, response, p.timeout)
	if nil != err {
		p.log.Warnf("unregister error: %s", err)
	}
	p.close()
}

func (p *Processor) close() {
	if nil != p.conn {
		p.conn.Close()
		p.conn = nil
	}
}
