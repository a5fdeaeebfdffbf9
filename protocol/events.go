// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	proto "github.com/golang/protobuf/proto"
)

// well known event types
const (
	EventBlockCommit = "sawtooth/block-commit"
	EventStateDelta  = "sawtooth/state-delta"
)

type Event_Attribute struct {
	Key   string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value string `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Event_Attribute) Reset()         { *m = Event_Attribute{} }
func (m *Event_Attribute) String() string { return proto.CompactTextString(m) }
func (*Event_Attribute) ProtoMessage()    {}

// Event - a notification from the validator
type Event struct {
	EventType  string             `protobuf:"bytes,1,opt,name=event_type,json=eventType,proto3" json:"event_type,omitempty"`
	Attributes []*Event_Attribute `protobuf:"bytes,2,rep,name=attributes,proto3" json:"attributes,omitempty"`
	Data       []byte             `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *Event) Reset()         { *m = Event{} }
func (m *Event) String() string { return proto.CompactTextString(m) }
func (*Event) ProtoMessage()    {}

// Attribute - value of the first attribute with the key
func (m *Event) Attribute(key string) (string, bool) {
	for _, a := range m.Attributes {
		if key == a.Key {
			return a.Value, true
		}
	}
	return "", false
}

type EventList struct {
	Events []*Event `protobuf:"bytes,1,rep,name=events,proto3" json:"events,omitempty"`
}

func (m *EventList) Reset()         { *m = EventList{} }
func (m *EventList) String() string { return proto.CompactTextString(m) }
func (*EventList) ProtoMessage()    {}

type EventFilter_FilterType int32

const (
	EventFilter_FILTER_TYPE_UNSET EventFilter_FilterType = 0
	EventFilter_SIMPLE_ANY        EventFilter_FilterType = 1
	EventFilter_SIMPLE_ALL        EventFilter_FilterType = 2
	EventFilter_REGEX_ANY         EventFilter_FilterType = 3
	EventFilter_REGEX_ALL         EventFilter_FilterType = 4
)

var EventFilter_FilterType_name = map[int32]string{
	0: "FILTER_TYPE_UNSET",
	1: "SIMPLE_ANY",
	2: "SIMPLE_ALL",
	3: "REGEX_ANY",
	4: "REGEX_ALL",
}

func (x EventFilter_FilterType) String() string {
	return proto.EnumName(EventFilter_FilterType_name, int32(x))
}

type EventFilter struct {
	Key         string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	MatchString string                 `protobuf:"bytes,2,opt,name=match_string,json=matchString,proto3" json:"match_string,omitempty"`
	FilterType  EventFilter_FilterType `protobuf:"varint,3,opt,name=filter_type,json=filterType,proto3,enum=EventFilter_FilterType" json:"filter_type,omitempty"`
}

func (m *EventFilter) Reset()         { *m = EventFilter{} }
func (m *EventFilter) String() string { return proto.CompactTextString(m) }
func (*EventFilter) ProtoMessage()    {}

type EventSubscription struct {
	EventType string         `protobuf:"bytes,1,opt,name=event_type,json=eventType,proto3" json:"event_type,omitempty"`
	Filters   []*EventFilter `protobuf:"bytes,2,rep,name=filters,proto3" json:"filters,omitempty"`
}

func (m *EventSubscription) Reset()         { *m = EventSubscription{} }
func (m *EventSubscription) String() string { return proto.CompactTextString(m) }
func (*EventSubscription) ProtoMessage()    {}

type ClientEventsSubscribeRequest struct {
	Subscriptions     []*EventSubscription `protobuf:"bytes,1,rep,name=subscriptions,proto3" json:"subscriptions,omitempty"`
	LastKnownBlockIds []string             `protobuf:"bytes,2,rep,name=last_known_block_ids,json=lastKnownBlockIds,proto3" json:"last_known_block_ids,omitempty"`
}

func (m *ClientEventsSubscribeRequest) Reset()         { *m = ClientEventsSubscribeRequest{} }
func (m *ClientEventsSubscribeRequest) String() string { return proto.CompactTextString(m) }
func (*ClientEventsSubscribeRequest) ProtoMessage()    {}

type ClientEventsSubscribeResponse_Status int32

const (
	ClientEventsSubscribeResponse_STATUS_UNSET   ClientEventsSubscribeResponse_Status = 0
	ClientEventsSubscribeResponse_OK             ClientEventsSubscribeResponse_Status = 1
	ClientEventsSubscribeResponse_INVALID_FILTER ClientEventsSubscribeResponse_Status = 2
	ClientEventsSubscribeResponse_UNKNOWN_BLOCK  ClientEventsSubscribeResponse_Status = 3
)

var ClientEventsSubscribeResponse_Status_name = map[int32]string{
	0: "STATUS_UNSET",
	1: "OK",
	2: "INVALID_FILTER",
	3: "UNKNOWN_BLOCK",
}

func (x ClientEventsSubscribeResponse_Status) String() string {
	return proto.EnumName(ClientEventsSubscribeResponse_Status_name, int32(x))
}

type ClientEventsSubscribeResponse struct {
	Status          ClientEventsSubscribeResponse_Status `protobuf:"varint,1,opt,name=status,proto3,enum=ClientEventsSubscribeResponse_Status" json:"status,omitempty"`
	ResponseMessage string                               `protobuf:"bytes,2,opt,name=response_message,json=responseMessage,proto3" json:"response_message,omitempty"`
}

func (m *ClientEventsSubscribeResponse) Reset()         { *m = ClientEventsSubscribeResponse{} }
func (m *ClientEventsSubscribeResponse) String() string { return proto.CompactTextString(m) }
func (*ClientEventsSubscribeResponse) ProtoMessage()    {}

type ClientEventsUnsubscribeRequest struct{}

func (m *ClientEventsUnsubscribeRequest) Reset()         { *m = ClientEventsUnsubscribeRequest{} }
func (m *ClientEventsUnsubscribeRequest) String() string { return proto.CompactTextString(m) }
func (*ClientEventsUnsubscribeRequest) ProtoMessage()    {}

type ClientEventsUnsubscribeResponse struct {
	Status ClientEventsSubscribeResponse_Status `protobuf:"varint,1,opt,name=status,proto3,enum=ClientEventsUnsubscribeResponse_Status" json:"status,omitempty"`
}

func (m *ClientEventsUnsubscribeResponse) Reset()         { *m = ClientEventsUnsubscribeResponse{} }
func (m *ClientEventsUnsubscribeResponse) String() string { return proto.CompactTextString(m) }
func (*ClientEventsUnsubscribeResponse) ProtoMessage()    {}

type StateChange_Type int32

const (
	StateChange_TYPE_UNSET StateChange_Type = 0
	StateChange_SET        StateChange_Type = 1
	StateChange_DELETE     StateChange_Type = 2
)

var StateChange_Type_name = map[int32]string{
	0: "TYPE_UNSET",
	1: "SET",
	2: "DELETE",
}

func (x StateChange_Type) String() string {
	return proto.EnumName(StateChange_Type_name, int32(x))
}

type StateChange struct {
	Address string           `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Value   []byte           `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	Type    StateChange_Type `protobuf:"varint,3,opt,name=type,proto3,enum=StateChange_Type" json:"type,omitempty"`
}

func (m *StateChange) Reset()         { *m = StateChange{} }
func (m *StateChange) String() string { return proto.CompactTextString(m) }
func (*StateChange) ProtoMessage()    {}

type StateChangeList struct {
	StateChanges []*StateChange `protobuf:"bytes,1,rep,name=state_changes,json=stateChanges,proto3" json:"state_changes,omitempty"`
}

func (m *StateChangeList) Reset()         { *m = StateChangeList{} }
func (m *StateChangeList) String() string { return proto.CompactTextString(m) }
func (*StateChangeList) ProtoMessage()    {}
