// Copyright Project Taskd Authors
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

package v1

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// file_apis_task_v1_task_proto_rawDesc is the serialized form of
// task.proto. It is assembled from the descriptor literal below; any
// change to task.proto must be mirrored here.
var file_apis_task_v1_task_proto_rawDesc = func() []byte {
	b, err := proto.Marshal(file_apis_task_v1_task_proto_descriptor())
	if err != nil {
		panic(err)
	}
	return b
}()

func file_apis_task_v1_task_proto_descriptor() *descriptorpb.FileDescriptorProto {
	var (
		labelOptional = descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
		labelRepeated = descriptorpb.FieldDescriptorProto_LABEL_REPEATED
		typeString    = descriptorpb.FieldDescriptorProto_TYPE_STRING
		typeBool      = descriptorpb.FieldDescriptorProto_TYPE_BOOL
		typeEnum      = descriptorpb.FieldDescriptorProto_TYPE_ENUM
		typeMessage   = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
	)

	field := func(name string, number int32, label descriptorpb.FieldDescriptorProto_Label, typ descriptorpb.FieldDescriptorProto_Type, typeName, jsonName string) *descriptorpb.FieldDescriptorProto {
		f := &descriptorpb.FieldDescriptorProto{
			Name:     proto.String(name),
			Number:   proto.Int32(number),
			Label:    &label,
			Type:     &typ,
			JsonName: proto.String(jsonName),
		}
		if typeName != "" {
			f.TypeName = proto.String(typeName)
		}
		return f
	}

	return &descriptorpb.FileDescriptorProto{
		Syntax:     proto.String("proto3"),
		Name:       proto.String("apis/task/v1/task.proto"),
		Package:    proto.String("task.v1"),
		Dependency: []string{"google/protobuf/any.proto"},
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/projecttaskd/taskd/apis/task/v1;v1"),
		},
		EnumType: []*descriptorpb.EnumDescriptorProto{{
			Name: proto.String("Status"),
			Value: []*descriptorpb.EnumValueDescriptorProto{
				{Name: proto.String("SUCCESS"), Number: proto.Int32(0)},
				{Name: proto.String("FAILED"), Number: proto.Int32(1)},
				{Name: proto.String("PENDING"), Number: proto.Int32(2)},
			},
		}},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("TaskRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("task_id", 1, labelOptional, typeString, "", "taskId"),
					field("method", 2, labelOptional, typeString, "", "method"),
					field("args", 3, labelRepeated, typeMessage, ".google.protobuf.Any", "args"),
					field("deps", 4, labelRepeated, typeString, "", "deps"),
					field("is_async", 5, labelOptional, typeBool, "", "isAsync"),
				},
			},
			{
				Name: proto.String("TaskResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("task_id", 1, labelOptional, typeString, "", "taskId"),
					field("status", 2, labelOptional, typeEnum, ".task.v1.Status", "status"),
					field("result", 3, labelOptional, typeString, "", "result"),
				},
			},
			{
				Name: proto.String("ResultRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("task_id", 1, labelOptional, typeString, "", "taskId"),
				},
			},
			{
				Name: proto.String("ResultResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("status", 1, labelOptional, typeEnum, ".task.v1.Status", "status"),
					field("result", 2, labelOptional, typeString, "", "result"),
				},
			},
			{
				Name: proto.String("ListValue"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("values", 1, labelRepeated, typeMessage, ".google.protobuf.Any", "values"),
				},
			},
			{
				Name: proto.String("MapValue"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("entries", 1, labelRepeated, typeMessage, ".task.v1.MapValue.Entry", "entries"),
				},
				NestedType: []*descriptorpb.DescriptorProto{{
					Name: proto.String("Entry"),
					Field: []*descriptorpb.FieldDescriptorProto{
						field("key", 1, labelOptional, typeString, "", "key"),
						field("value", 2, labelOptional, typeMessage, ".google.protobuf.Any", "value"),
					},
				}},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("TaskScheduler"),
			Method: []*descriptorpb.MethodDescriptorProto{
				{
					Name:       proto.String("SubmitTask"),
					InputType:  proto.String(".task.v1.TaskRequest"),
					OutputType: proto.String(".task.v1.TaskResponse"),
				},
				{
					Name:       proto.String("GetResult"),
					InputType:  proto.String(".task.v1.ResultRequest"),
					OutputType: proto.String(".task.v1.ResultResponse"),
				},
			},
		}},
	}
}
