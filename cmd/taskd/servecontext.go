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

package main

import (
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/keepalive"

	"github.com/projecttaskd/taskd/pkg/config"
)

type serveContext struct {
	Config config.Parameters
}

func newServeContext() *serveContext {
	return &serveContext{
		Config: config.Defaults(),
	}
}

// insecure reports whether the gRPC listener will serve plaintext.
func (ctx *serveContext) insecure() bool {
	return ctx.Config.TLS.CertFile == "" && ctx.Config.TLS.KeyFile == ""
}

// mutualTLS reports whether client certificates will be required and
// verified.
func (ctx *serveContext) mutualTLS() bool {
	return ctx.Config.TLS.CAFile != ""
}

// grpcOptions returns a slice of grpc.ServerOptions. If a certificate
// and key are configured the option set includes TLS configuration.
func (ctx *serveContext) grpcOptions(log logrus.FieldLogger) []grpc.ServerOption {
	opts := []grpc.ServerOption{
		// Somewhat arbitrary limit to handle many concurrent
		// submission streams.
		grpc.MaxConcurrentStreams(1 << 20),
		// Set gRPC keepalive params so idle client connections
		// are not torn down prematurely.
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			PermitWithoutStream: true,
		}),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    60 * time.Second,
			Timeout: 20 * time.Second,
		}),
	}
	if !ctx.insecure() {
		tlsconfig := ctx.tlsconfig(log)
		creds := credentials.NewTLS(tlsconfig)
		opts = append(opts, grpc.Creds(creds))
	}
	return opts
}

// tlsconfig returns a new *tls.Config. If the context is not properly
// configured for tls communication, tlsconfig aborts the process.
func (ctx *serveContext) tlsconfig(log logrus.FieldLogger) *tls.Config {
	if err := ctx.verifyTLSFlags(); err != nil {
		log.WithError(err).Fatal("failed to parse TLS parameters")
	}

	// Define a closure that lazily loads certificates and key at TLS
	// handshake to ensure that latest certificates are used in case
	// they have been rotated.
	loadConfig := func() (*tls.Config, error) {
		cert, err := tls.LoadX509KeyPair(ctx.Config.TLS.CertFile, ctx.Config.TLS.KeyFile)
		if err != nil {
			return nil, err
		}

		c := &tls.Config{
			Certificates: []tls.Certificate{cert},
			Rand:         rand.Reader,
		}

		if ctx.mutualTLS() {
			ca, err := ioutil.ReadFile(ctx.Config.TLS.CAFile)
			if err != nil {
				return nil, err
			}

			certPool := x509.NewCertPool()
			if ok := certPool.AppendCertsFromPEM(ca); !ok {
				return nil, fmt.Errorf("unable to append certificate in %s to CA pool", ctx.Config.TLS.CAFile)
			}

			c.ClientAuth = tls.RequireAndVerifyClientCert
			c.ClientCAs = certPool
		}

		return c, nil
	}

	// Attempt to load certificates and key to catch configuration errors early.
	if _, err := loadConfig(); err != nil {
		log.WithError(err).Fatal("failed to load TLS parameters")
	}

	clientAuth := tls.NoClientCert
	if ctx.mutualTLS() {
		clientAuth = tls.RequireAndVerifyClientCert
	}

	return &tls.Config{
		ClientAuth: clientAuth,
		Rand:       rand.Reader,
		GetConfigForClient: func(*tls.ClientHelloInfo) (*tls.Config, error) {
			return loadConfig()
		},
	}
}

// verifyTLSFlags indicates if the TLS flags are set up correctly.
func (ctx *serveContext) verifyTLSFlags() error {
	tls := ctx.Config.TLS
	if (tls.CertFile == "") != (tls.KeyFile == "") {
		return errors.New("you must supply both --cert-file and --key-file, or neither of them")
	}
	if tls.CAFile != "" && tls.CertFile == "" {
		return errors.New("client certificate verification requires --cert-file and --key-file")
	}
	return nil
}
