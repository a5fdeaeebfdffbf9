// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events_test

import (
	"testing"
	"time"

	proto "github.com/golang/protobuf/proto"
	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/prodcon/events"
	"github.com/bitmark-inc/prodcon/family"
	"github.com/bitmark-inc/prodcon/handler"
	"github.com/bitmark-inc/prodcon/protocol"
	"github.com/bitmark-inc/prodcon/zmqutil"
)

func TestSubscriptions(t *testing.T) {
	prefix := family.Default().Prefix()
	subscriptions := events.Subscriptions(prefix)

	assert.Equal(t, 2, len(subscriptions))
	assert.Equal(t, "sawtooth/block-commit", subscriptions[0].EventType)
	assert.Equal(t, "sawtooth/state-delta", subscriptions[1].EventType)
	assert.Equal(t, "address", subscriptions[1].Filters[0].Key)
	assert.Equal(t, "^"+prefix+".*", subscriptions[1].Filters[0].MatchString)
	assert.Equal(t, protocol.EventFilter_REGEX_ANY, subscriptions[1].Filters[0].FilterType)
}

func TestStateChanges(t *testing.T) {
	addr := family.Default().Address("widget")
	data, _ := proto.Marshal(&protocol.StateChangeList{
		StateChanges: []*protocol.StateChange{
			{Address: addr, Value: handler.EncodeBalance(6), Type: protocol.StateChange_SET},
		},
	})

	changes, err := events.StateChanges(&protocol.Event{EventType: protocol.EventStateDelta, Data: data})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(changes))
	assert.Equal(t, addr, changes[0].Address)
	assert.Equal(t, protocol.StateChange_SET, changes[0].Type)

	_, err = events.StateChanges(&protocol.Event{EventType: protocol.EventBlockCommit})
	assert.NotNil(t, err)
}

func TestSubscribe(t *testing.T) {
	const endpoint = "inproc://events-test"

	router, err := zmq.NewSocket(zmq.ROUTER)
	if nil != err {
		t.Fatalf("socket error: %s", err)
	}
	defer router.Close()
	router.SetLinger(0)
	router.SetRcvtimeo(5 * time.Second)
	if err := router.Bind(endpoint); nil != err {
		t.Fatalf("bind error: %s", err)
	}

	conn, err := zmqutil.NewConnection(endpoint)
	if nil != err {
		t.Fatalf("connection error: %s", err)
	}
	defer conn.Close()

	reply := func(identity []byte, messageType protocol.Message_MessageType, correlationId string, content proto.Message) {
		data, _ := proto.Marshal(content)
		frame, _ := proto.Marshal(&protocol.Message{MessageType: messageType, CorrelationId: correlationId, Content: data})
		router.SendMessage(identity, frame)
	}

	// the validator side runs in its own goroutine while Subscribe blocks
	done := make(chan struct{})
	go func() {
		defer close(done)
		frames, err := router.RecvMessageBytes(0)
		if nil != err {
			return
		}
		message := &protocol.Message{}
		proto.Unmarshal(frames[1], message)
		if protocol.Message_CLIENT_EVENTS_SUBSCRIBE_REQUEST != message.MessageType {
			return
		}
		reply(frames[0], protocol.Message_CLIENT_EVENTS_SUBSCRIBE_RESPONSE, message.CorrelationId,
			&protocol.ClientEventsSubscribeResponse{Status: protocol.ClientEventsSubscribeResponse_OK})

		reply(frames[0], protocol.Message_PING_REQUEST, "ping", &protocol.PingRequest{})
		reply(frames[0], protocol.Message_CLIENT_EVENTS, "", &protocol.EventList{
			Events: []*protocol.Event{{EventType: protocol.EventBlockCommit}},
		})

		// ping response
		router.RecvMessageBytes(0)
	}()

	s, err := events.Subscribe(conn, events.Subscriptions(family.Default().Prefix()), 5*time.Second)
	if nil != err {
		t.Fatalf("subscribe error: %s", err)
	}

	list, err := s.Receive(5 * time.Second)
	if nil != err {
		t.Fatalf("receive error: %s", err)
	}
	assert.Equal(t, 1, len(list.Events))
	assert.Equal(t, protocol.EventBlockCommit, list.Events[0].EventType)

	<-done
}
