// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payload

import (
	"strconv"

	proto "github.com/gogo/protobuf/proto"
)

// Command - the operation requested by a payload
type Command int32

// the closed set of commands
const (
	PRODUCE Command = 0
	CONSUME Command = 1
)

var commandNames = map[int32]string{
	0: "PRODUCE",
	1: "CONSUME",
}

var commandValues = map[string]int32{
	"PRODUCE": 0,
	"CONSUME": 1,
}

func (c Command) String() string {
	if s, ok := commandNames[int32(c)]; ok {
		return s
	}
	return "Command(" + strconv.Itoa(int(c)) + ")"
}

// IsValid - true for a known command
func (c Command) IsValid() bool {
	_, ok := commandNames[int32(c)]
	return ok
}

// Action - wire form of a payload
type Action struct {
	Command    Command `protobuf:"varint,1,opt,name=command,proto3,enum=prodcon.Command" json:"command,omitempty"`
	Identifier string  `protobuf:"bytes,2,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Quantity   int32   `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *Action) Reset()         { *m = Action{} }
func (m *Action) String() string { return proto.CompactTextString(m) }
func (*Action) ProtoMessage()    {}

func init() {
	proto.RegisterEnum("prodcon.Command", commandNames, commandValues)
}
