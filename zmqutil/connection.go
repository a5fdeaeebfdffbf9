// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zmqutil - framed message connection to a validator
//
// A DEALER socket carries one protobuf Message per frame. Replies are
// matched to requests by correlation id; frames that arrive while
// waiting for a particular reply are kept in order for later Receive
// calls. A frame that is not a valid Message is dropped and reported
// as an encoding error; the connection stays usable. A connection must
// only be used from a single goroutine.
package zmqutil

import (
	"time"

	proto "github.com/golang/protobuf/proto"
	"github.com/google/uuid"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/protocol"
)

// Connection - DEALER socket to a validator
type Connection struct {
	address string
	socket  *zmq.Socket
	poller  *zmq.Poller
	backlog []*protocol.Message
}

// NewConnection - create a socket and connect to the address
func NewConnection(address string) (*Connection, error) {
	socket, err := zmq.NewSocket(zmq.DEALER)
	if nil != err {
		return nil, err
	}

	// local identity is a random value
	err = socket.SetIdentity(uuid.New().String())
	if nil != err {
		goto failure
	}
	err = socket.SetLinger(0)
	if nil != err {
		goto failure
	}
	err = socket.Connect(address)
	if nil != err {
		goto failure
	}

	{
		poller := zmq.NewPoller()
		poller.Add(socket, zmq.POLLIN)

		c := &Connection{
			address: address,
			socket:  socket,
			poller:  poller,
			backlog: make([]*protocol.Message, 0, 8),
		}
		return c, nil
	}

failure:
	socket.Close()
	return nil, err
}

// Address - the connected endpoint
func (c *Connection) Address() string {
	return c.address
}

// Close - disconnect
func (c *Connection) Close() error {
	return c.socket.Close()
}

// Send - send a new request, returns its correlation id
func (c *Connection) Send(messageType protocol.Message_MessageType, content proto.Message) (string, error) {
	correlationId := uuid.New().String()
	err := c.Reply(messageType, correlationId, content)
	if nil != err {
		return "", err
	}
	return correlationId, nil
}

// Reply - send a message with a given correlation id
func (c *Connection) Reply(messageType protocol.Message_MessageType, correlationId string, content proto.Message) error {
	data, err := proto.Marshal(content)
	if nil != err {
		return err
	}
	message := &protocol.Message{
		MessageType:   messageType,
		CorrelationId: correlationId,
		Content:       data,
	}
	frame, err := proto.Marshal(message)
	if nil != err {
		return err
	}
	_, err = c.socket.SendBytes(frame, 0)
	return err
}

// Receive - next message, waiting at most timeout (0 => forever)
func (c *Connection) Receive(timeout time.Duration) (*protocol.Message, error) {
	if 0 != len(c.backlog) {
		message := c.backlog[0]
		c.backlog = c.backlog[1:]
		return message, nil
	}
	return c.read(timeout)
}

// ReceiveWithId - wait for the reply to a specific request
//
// other messages received meanwhile are queued for Receive
func (c *Connection) ReceiveWithId(correlationId string, timeout time.Duration) (*protocol.Message, error) {
	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Duration(0)
		if 0 != timeout {
			remaining = time.Until(deadline)
			if remaining <= 0 {
				return nil, fault.ErrTimeout
			}
		}
		message, err := c.read(remaining)
		if fault.IsErrEncoding(err) {
			continue
		}
		if nil != err {
			return nil, err
		}
		if correlationId == message.CorrelationId {
			return message, nil
		}
		c.backlog = append(c.backlog, message)
	}
}

// Request - send a request and decode the matching reply
func (c *Connection) Request(messageType protocol.Message_MessageType, content proto.Message, replyType protocol.Message_MessageType, reply proto.Message, timeout time.Duration) error {
	correlationId, err := c.Send(messageType, content)
	if nil != err {
		return err
	}
	message, err := c.ReceiveWithId(correlationId, timeout)
	if nil != err {
		return err
	}
	if replyType != message.MessageType {
		return fault.ProcessError(fault.ErrUnexpectedMessage.Error() + ": " + message.MessageType.String())
	}
	return proto.Unmarshal(message.Content, reply)
}

func (c *Connection) read(timeout time.Duration) (*protocol.Message, error) {
	if 0 == timeout {
		timeout = -1
	}
	polled, err := c.poller.Poll(timeout)
	if nil != err {
		return nil, err
	}
	if 0 == len(polled) {
		return nil, fault.ErrTimeout
	}

	frame, err := c.socket.RecvBytes(0)
	if nil != err {
		return nil, err
	}
	message := &protocol.Message{}
	err = proto.Unmarshal(frame, message)
	if nil != err {
		return nil, fault.EncodingError("message decode: " + err.Error())
	}
	return message, nil
}
