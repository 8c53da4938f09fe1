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

// Package build records the identity of the running taskd binary: what
// it was built from, and which wire protocol revision it serves.
package build

import (
	"runtime"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	taskv1 "github.com/projecttaskd/taskd/apis/task/v1"
)

// Branch allows for a queryable branch name set at build time.
var Branch string

// Sha allows for a queryable git sha set at build time.
var Sha string

// Version allows for a queryable version set at build time.
var Version string

// Info describes the running binary and the task protocol it serves.
type Info struct {
	Branch    string `yaml:"branch,omitempty"`
	Sha       string `yaml:"sha,omitempty"`
	Version   string `yaml:"version,omitempty"`
	GoVersion string `yaml:"go,omitempty"`
	Protocol  string `yaml:"protocol,omitempty"`
}

// Current returns the build information for the running binary. The
// protocol revision is read from the registered wire schema so the
// version output always names the API actually compiled in.
func Current() Info {
	return Info{
		Branch:    Branch,
		Sha:       Sha,
		Version:   Version,
		GoVersion: runtime.Version(),
		Protocol:  string(taskv1.File_apis_task_v1_task_proto.Package()),
	}
}

// String renders the build information for the version subcommand.
func (i Info) String() string {
	out, err := yaml.Marshal(i)
	if err != nil {
		panic(err)
	}
	return string(out)
}

// Fields returns the build information as logrus fields for startup
// logging.
func (i Info) Fields() logrus.Fields {
	return logrus.Fields{
		"branch":   i.Branch,
		"sha":      i.Sha,
		"version":  i.Version,
		"go":       i.GoVersion,
		"protocol": i.Protocol,
	}
}
