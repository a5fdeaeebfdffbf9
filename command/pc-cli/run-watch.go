// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/prodcon/events"
	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/handler"
	"github.com/bitmark-inc/prodcon/protocol"
	"github.com/bitmark-inc/prodcon/zmqutil"
)

// poll period while waiting for events so an interrupt is noticed
const watchPoll = time.Second

type watchEntry struct {
	Event    string `json:"event"`
	BlockNum string `json:"block_num,omitempty"`
	BlockId  string `json:"block_id,omitempty"`
	Address  string `json:"address,omitempty"`
	Change   string `json:"change,omitempty"`
	Quantity *int32 `json:"quantity,omitempty"`
	Error    string `json:"error,omitempty"`
}

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	validator := c.String("validator")
	count := c.Int("count")
	timeout := c.Duration("timeout")

	if count < 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "validator: %s\n", validator)
		fmt.Fprintf(m.e, "namespace: %s\n", m.family.Prefix())
	}

	conn, err := zmqutil.NewConnection(validator)
	if nil != err {
		return err
	}
	defer conn.Close()

	subscriber, err := events.Subscribe(conn, events.Subscriptions(m.family.Prefix()), timeout)
	if nil != err {
		return err
	}
	fmt.Fprintf(m.e, "listening to events on: %s\n", validator)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	received := 0
loop:
	for 0 == count || received < count {
		select {
		case <-interrupt:
			break loop
		default:
		}

		list, err := subscriber.Receive(watchPoll)
		if fault.ErrTimeout == err {
			continue loop
		}
		if nil != err {
			return err
		}
		received += 1

		for _, entry := range describeEvents(list) {
			if err := m.printJsonLine(entry); nil != err {
				return err
			}
		}
	}

	return subscriber.Unsubscribe()
}

func describeEvents(list *protocol.EventList) []watchEntry {
	entries := make([]watchEntry, 0, len(list.Events))

	for _, event := range list.Events {
		switch event.EventType {
		case protocol.EventBlockCommit:
			num, _ := event.Attribute("block_num")
			id, _ := event.Attribute("block_id")
			entries = append(entries, watchEntry{
				Event:    event.EventType,
				BlockNum: num,
				BlockId:  id,
			})

		case protocol.EventStateDelta:
			changes, err := events.StateChanges(event)
			if nil != err {
				entries = append(entries, watchEntry{
					Event: event.EventType,
					Error: err.Error(),
				})
				continue
			}
			for _, change := range changes {
				entry := watchEntry{
					Event:   event.EventType,
					Address: change.Address,
					Change:  strings.ToLower(change.Type.String()),
				}
				if protocol.StateChange_SET == change.Type {
					n, err := handler.DecodeBalance(change.Value)
					if nil != err {
						entry.Error = err.Error()
					} else {
						entry.Quantity = &n
					}
				}
				entries = append(entries, entry)
			}

		default:
			entries = append(entries, watchEntry{
				Event: event.EventType,
			})
		}
	}
	return entries
}
