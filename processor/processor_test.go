// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"os"
	"testing"
	"time"

	proto "github.com/golang/protobuf/proto"
	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/prodcon/background"
	"github.com/bitmark-inc/prodcon/family"
	"github.com/bitmark-inc/prodcon/handler"
	"github.com/bitmark-inc/prodcon/payload"
	"github.com/bitmark-inc/prodcon/processor"
	"github.com/bitmark-inc/prodcon/protocol"
)

const (
	dir      = "testing"
	category = "testing"
	endpoint = "inproc://processor-test"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(dir)
	_ = os.Mkdir(dir, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	rc := m.Run()
	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

// minimal validator: a ROUTER socket holding state for all contexts
type validator struct {
	t        *testing.T
	socket   *zmq.Socket
	identity []byte
	state    map[string][]byte
	deny     bool
}

func (v *validator) receive() *protocol.Message {
	frames, err := v.socket.RecvMessageBytes(0)
	if nil != err {
		v.t.Fatalf("validator receive error: %s", err)
	}
	v.identity = frames[0]
	message := &protocol.Message{}
	if err := proto.Unmarshal(frames[1], message); nil != err {
		v.t.Fatalf("validator decode error: %s", err)
	}
	return message
}

func (v *validator) send(messageType protocol.Message_MessageType, correlationId string, content proto.Message) {
	data, _ := proto.Marshal(content)
	frame, _ := proto.Marshal(&protocol.Message{
		MessageType:   messageType,
		CorrelationId: correlationId,
		Content:       data,
	})
	if _, err := v.socket.SendMessage(v.identity, frame); nil != err {
		v.t.Fatalf("validator send error: %s", err)
	}
}

// a frame that is not a valid message
func (v *validator) sendGarbage() {
	if _, err := v.socket.SendMessage(v.identity, []byte{0xff}); nil != err {
		v.t.Fatalf("validator send error: %s", err)
	}
}

// send a transaction and answer state requests until the processor responds
func (v *validator) process(correlationId string, command payload.Command, identifier string, quantity int32) *protocol.TpProcessResponse {
	payloadBytes, _ := payload.Encode(command, identifier, quantity)
	request := &protocol.TpProcessRequest{
		Header: &protocol.TransactionHeader{
			FamilyName:    family.DefaultName,
			FamilyVersion: family.DefaultVersion,
		},
		Payload:   payloadBytes,
		Signature: correlationId,
		ContextId: "context-" + correlationId,
	}
	v.send(protocol.Message_TP_PROCESS_REQUEST, correlationId, request)

	for {
		message := v.receive()
		switch message.MessageType {
		case protocol.Message_TP_STATE_GET_REQUEST:
			get := &protocol.TpStateGetRequest{}
			proto.Unmarshal(message.Content, get)
			assert.Equal(v.t, "context-"+correlationId, get.ContextId)
			response := &protocol.TpStateGetResponse{Status: protocol.TpStateResponse_OK}
			if v.deny {
				response.Status = protocol.TpStateResponse_AUTHORIZATION_ERROR
			}
			for _, a := range get.Addresses {
				response.Entries = append(response.Entries, &protocol.TpStateEntry{Address: a, Data: v.state[a]})
			}
			v.send(protocol.Message_TP_STATE_GET_RESPONSE, message.CorrelationId, response)

		case protocol.Message_TP_STATE_SET_REQUEST:
			set := &protocol.TpStateSetRequest{}
			proto.Unmarshal(message.Content, set)
			response := &protocol.TpStateSetResponse{Status: protocol.TpStateResponse_OK}
			for _, e := range set.Entries {
				v.state[e.Address] = e.Data
				response.Addresses = append(response.Addresses, e.Address)
			}
			v.send(protocol.Message_TP_STATE_SET_RESPONSE, message.CorrelationId, response)

		case protocol.Message_TP_PROCESS_RESPONSE:
			assert.Equal(v.t, correlationId, message.CorrelationId)
			response := &protocol.TpProcessResponse{}
			proto.Unmarshal(message.Content, response)
			return response

		default:
			v.t.Fatalf("unexpected message: %s", message.MessageType)
		}
	}
}

func TestProcessor(t *testing.T) {
	socket, err := zmq.NewSocket(zmq.ROUTER)
	if nil != err {
		t.Fatalf("socket error: %s", err)
	}
	defer socket.Close()
	socket.SetLinger(0)
	socket.SetRcvtimeo(10 * time.Second)
	if err := socket.Bind(endpoint); nil != err {
		t.Fatalf("bind error: %s", err)
	}

	v := &validator{
		t:      t,
		socket: socket,
		state:  make(map[string][]byte),
	}

	h := handler.New(family.Default(), logger.New(category))
	p := processor.New(logger.New(category), endpoint, 5*time.Second, h)
	processes := background.Start(background.Processes{p}, nil)

	// registration
	message := v.receive()
	assert.Equal(t, protocol.Message_TP_REGISTER_REQUEST, message.MessageType)
	register := &protocol.TpRegisterRequest{}
	assert.Nil(t, proto.Unmarshal(message.Content, register))
	assert.Equal(t, "produce-consume", register.Family)
	assert.Equal(t, "1.0", register.Version)
	assert.Equal(t, []string{family.Default().Prefix()}, register.Namespaces)
	assert.Equal(t, uint32(1), register.MaxOccupancy)
	assert.Equal(t, uint32(1), register.ProtocolVersion)
	assert.Equal(t, protocol.TpRegisterRequest_EXPANDED, register.RequestHeaderStyle)
	v.send(protocol.Message_TP_REGISTER_RESPONSE, message.CorrelationId, &protocol.TpRegisterResponse{Status: protocol.TpRegisterResponse_OK})

	response := v.process("1", payload.PRODUCE, "widget", 10)
	assert.Equal(t, protocol.TpProcessResponse_OK, response.Status)
	assert.Equal(t, handler.EncodeBalance(10), v.state[family.Default().Address("widget")])

	response = v.process("2", payload.CONSUME, "widget", 11)
	assert.Equal(t, protocol.TpProcessResponse_INVALID_TRANSACTION, response.Status)
	assert.Equal(t, "Invalid resultant quantity", response.Message)
	assert.Equal(t, handler.EncodeBalance(10), v.state[family.Default().Address("widget")])

	v.state[family.Default().Address("broken")] = []byte{1, 2}
	response = v.process("3", payload.PRODUCE, "broken", 1)
	assert.Equal(t, protocol.TpProcessResponse_INTERNAL_ERROR, response.Status)

	v.deny = true
	response = v.process("4", payload.PRODUCE, "widget", 1)
	assert.Equal(t, protocol.TpProcessResponse_INVALID_TRANSACTION, response.Status)
	v.deny = false

	v.send(protocol.Message_PING_REQUEST, "ping", &protocol.PingRequest{})
	message = v.receive()
	assert.Equal(t, protocol.Message_PING_RESPONSE, message.MessageType)
	assert.Equal(t, "ping", message.CorrelationId)

	// an undecodable frame is dropped and the next request still served
	v.sendGarbage()
	response = v.process("5", payload.PRODUCE, "widget", 1)
	assert.Equal(t, protocol.TpProcessResponse_OK, response.Status)
	assert.Equal(t, handler.EncodeBalance(11), v.state[family.Default().Address("widget")])

	// shutdown unregisters
	stopped := make(chan struct{})
	go func() {
		processes.Stop()
		close(stopped)
	}()
	message = v.receive()
	assert.Equal(t, protocol.Message_TP_UNREGISTER_REQUEST, message.MessageType)
	v.send(protocol.Message_TP_UNREGISTER_RESPONSE, message.CorrelationId, &protocol.TpUnregisterResponse{Status: protocol.TpRegisterResponse_OK})

	select {
	case <-stopped:
	case <-time.After(10 * time.Second):
		t.Fatal("processor did not stop")
	}
}
