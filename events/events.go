// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package events - subscribe to block commit and state delta events
package events

import (
	"time"

	proto "github.com/golang/protobuf/proto"

	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/protocol"
	"github.com/bitmark-inc/prodcon/zmqutil"
)

// Subscriber - an active subscription on a validator connection
type Subscriber struct {
	conn    *zmqutil.Connection
	timeout time.Duration
}

// NamespaceFilter - match state changes below an address prefix
func NamespaceFilter(prefix string) *protocol.EventFilter {
	return &protocol.EventFilter{
		Key:         "address",
		MatchString: "^" + prefix + ".*",
		FilterType:  protocol.EventFilter_REGEX_ANY,
	}
}

// Subscriptions - block commits and state deltas for a namespace
func Subscriptions(prefix string) []*protocol.EventSubscription {
	return []*protocol.EventSubscription{
		{
			EventType: protocol.EventBlockCommit,
		},
		{
			EventType: protocol.EventStateDelta,
			Filters:   []*protocol.EventFilter{NamespaceFilter(prefix)},
		},
	}
}

// Subscribe - register subscriptions and wait for the acknowledgement
func Subscribe(conn *zmqutil.Connection, subscriptions []*protocol.EventSubscription, timeout time.Duration) (*Subscriber, error) {
	request := &protocol.ClientEventsSubscribeRequest{
		Subscriptions: subscriptions,
	}
	response := &protocol.ClientEventsSubscribeResponse{}
	err := conn.Request(protocol.Message_CLIENT_EVENTS_SUBSCRIBE_REQUEST, request, protocol.Message_CLIENT_EVENTS_SUBSCRIBE_RESPONSE, response, timeout)
	if nil != err {
		return nil, err
	}
	if protocol.ClientEventsSubscribeResponse_OK != response.Status {
		return nil, fault.ProcessError(fault.ErrSubscriptionFailed.Error() + ": " + response.Status.String() + " " + response.ResponseMessage)
	}
	return &Subscriber{
		conn:    conn,
		timeout: timeout,
	}, nil
}

// Receive - next list of events, pings are answered transparently
func (s *Subscriber) Receive(timeout time.Duration) (*protocol.EventList, error) {
	for {
		message, err := s.conn.Receive(timeout)
		if nil != err {
			return nil, err
		}

		switch message.MessageType {
		case protocol.Message_CLIENT_EVENTS:
			list := &protocol.EventList{}
			if err := proto.Unmarshal(message.Content, list); nil != err {
				return nil, fault.ProcessError("event list decode: " + err.Error())
			}
			return list, nil

		case protocol.Message_PING_REQUEST:
			err := s.conn.Reply(protocol.Message_PING_RESPONSE, message.CorrelationId, &protocol.PingResponse{})
			if nil != err {
				return nil, err
			}

		default:
			return nil, fault.ProcessError(fault.ErrUnexpectedMessage.Error() + ": " + message.MessageType.String())
		}
	}
}

// Unsubscribe - cancel all subscriptions of the connection
func (s *Subscriber) Unsubscribe() error {
	response := &protocol.ClientEventsUnsubscribeResponse{}
	err := s.conn.Request(protocol.Message_CLIENT_EVENTS_UNSUBSCRIBE_REQUEST, &protocol.ClientEventsUnsubscribeRequest{}, protocol.Message_CLIENT_EVENTS_UNSUBSCRIBE_RESPONSE, response, s.timeout)
	if nil != err {
		return err
	}
	if protocol.ClientEventsSubscribeResponse_OK != response.Status {
		return fault.ErrUnexpectedStatus
	}
	return nil
}

// StateChanges - decode the data of a state delta event
func StateChanges(event *protocol.Event) ([]*protocol.StateChange, error) {
	if protocol.EventStateDelta != event.EventType {
		return nil, fault.ProcessError("not a state delta event: " + event.EventType)
	}
	list := &protocol.StateChangeList{}
	if err := proto.Unmarshal(event.Data, list); nil != err {
		return nil, fault.ProcessError("state change decode: " + err.Error())
	}
	return list.StateChanges, nil
}
