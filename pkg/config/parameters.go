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

// Package config holds the user-facing taskd configuration file format.
package config

import (
	"fmt"
	"io"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// TLSParameters hold the PEM paths securing the gRPC listener. All
// empty means plaintext; certificate and key without a CA file means
// TLS; all three mean mutual TLS.
type TLSParameters struct {
	CAFile   string `yaml:"ca-file,omitempty"`
	CertFile string `yaml:"cert-file,omitempty"`
	KeyFile  string `yaml:"key-file,omitempty"`
}

// EndpointParameters hold an address and port for an HTTP endpoint.
type EndpointParameters struct {
	Address string `yaml:"address,omitempty"`
	Port    int    `yaml:"port,omitempty"`
}

// Parameters hold the configuration file contents. Command line flags
// override values sourced from the file.
type Parameters struct {
	// Address the task gRPC API binds to.
	Address string `yaml:"address,omitempty"`

	// Port the task gRPC API binds to.
	Port int `yaml:"port,omitempty"`

	TLS TLSParameters `yaml:"tls,omitempty"`

	Metrics EndpointParameters `yaml:"metrics,omitempty"`
	Health  EndpointParameters `yaml:"health,omitempty"`
	Debug   EndpointParameters `yaml:"debug-http,omitempty"`

	// DebugLog enables debug logging.
	DebugLog bool `yaml:"debug,omitempty"`
}

// Defaults returns the default set of parameters.
func Defaults() Parameters {
	return Parameters{
		Address: "0.0.0.0",
		Port:    8001,
		Metrics: EndpointParameters{Address: "0.0.0.0", Port: 8000},
		Health:  EndpointParameters{Address: "0.0.0.0", Port: 8000},
		Debug:   EndpointParameters{Address: "127.0.0.1", Port: 6060},
	}
}

// Parse reads parameters from in, overlaying the defaults.
func Parse(in io.Reader) (*Parameters, error) {
	conf := Defaults()
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &conf, nil
}

// Validate verifies the parameters are in range.
func (p *Parameters) Validate() error {
	for _, e := range []struct {
		name string
		port int
	}{
		{"port", p.Port},
		{"metrics port", p.Metrics.Port},
		{"health port", p.Health.Port},
		{"debug port", p.Debug.Port},
	} {
		if e.port < 1 || e.port > 65535 {
			return fmt.Errorf("invalid %s %d", e.name, e.port)
		}
	}

	tls := p.TLS
	if tls.CAFile != "" && (tls.CertFile == "" || tls.KeyFile == "") {
		return fmt.Errorf("client certificate verification requires a server certificate and key")
	}
	if (tls.CertFile == "") != (tls.KeyFile == "") {
		return fmt.Errorf("certificate and key must both be supplied")
	}
	return nil
}
