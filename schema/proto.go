// Copyright 2024 The gqlkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schema

import (
	"io"

	"github.com/emicklei/proto"
)

// protoScalars maps a .proto scalar field type to the schema scalar that
// stands in for it. Anything not listed here is assumed to name a message
// or enum declared elsewhere in the same file and is projected as a bare
// Named reference instead.
var protoScalars = map[string]string{
	"string": "String", "bool": "Boolean",
	"int32": "Int", "int64": "Int", "uint32": "Int", "uint64": "Int",
	"sint32": "Int", "sint64": "Int", "fixed32": "Int", "fixed64": "Int",
	"float": "Float", "double": "Float",
}

// FromProto reads a .proto service/message description and projects its
// top-level message and enum declarations onto Object and Enum types: one
// schema field per proto.NormalField, one enum value per proto.EnumField.
// Nested messages, map fields, and oneofs are out of scope for this
// projection; a document schema built this way is meant for exercising the
// traversal engine against an externally authored type system, not for
// round-tripping an arbitrary .proto file.
func FromProto(r io.Reader) (*Schema, error) {
	p := proto.NewParser(r)
	def, err := p.Parse()
	if err != nil {
		return nil, err
	}

	c := &protoConverter{schema: New()}
	for _, e := range def.Elements {
		c.topElement(e)
	}
	// .proto has no notion of a root query type; by convention, a message
	// literally named Query (if present) stands in for one so a type
	// tracker has somewhere to start.
	c.schema.Root("Query", "", "")
	return c.schema.Build(), nil
}

type protoConverter struct {
	schema *Builder
}

func (c *protoConverter) topElement(v proto.Visitee) {
	switch x := v.(type) {
	case *proto.Message:
		c.schema.Add(c.message(x))
	case *proto.Enum:
		c.schema.Add(c.enum(x))
	}
}

func (c *protoConverter) message(x *proto.Message) *Type {
	t := NewObjectType(x.Name)
	for _, e := range x.Elements {
		field, ok := e.(*proto.NormalField)
		if !ok {
			continue
		}
		ref := c.fieldType(field)
		AddField(t, field.Name, ref)
	}
	return t
}

func (c *protoConverter) fieldType(f *proto.NormalField) TypeRef {
	named := f.Type
	if scalar, ok := protoScalars[f.Type]; ok {
		named = scalar
	}
	ref := Named(named)
	if f.Repeated {
		ref = List(ref)
	}
	return ref
}

func (c *protoConverter) enum(x *proto.Enum) *Type {
	var values []string
	for _, e := range x.Elements {
		if ev, ok := e.(*proto.EnumField); ok {
			values = append(values, ev.Name)
		}
	}
	return NewEnumType(x.Name, values...)
}
