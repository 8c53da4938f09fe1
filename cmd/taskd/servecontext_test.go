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
	"crypto/tls"
	"crypto/x509"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsaarni/certyaml"
	"google.golang.org/grpc"

	"github.com/projecttaskd/taskd/internal/fixture"
	"github.com/projecttaskd/taskd/pkg/config"
)

func TestVerifyTLSFlags(t *testing.T) {
	tests := map[string]struct {
		tls         config.TLSParameters
		expectError bool
	}{
		"plaintext": {
			tls: config.TLSParameters{},
		},
		"cert and key": {
			tls: config.TLSParameters{CertFile: "cert.pem", KeyFile: "key.pem"},
		},
		"all three": {
			tls: config.TLSParameters{CAFile: "ca.pem", CertFile: "cert.pem", KeyFile: "key.pem"},
		},
		"cert without key": {
			tls:         config.TLSParameters{CertFile: "cert.pem"},
			expectError: true,
		},
		"key without cert": {
			tls:         config.TLSParameters{KeyFile: "key.pem"},
			expectError: true,
		},
		"ca only": {
			tls:         config.TLSParameters{CAFile: "ca.pem"},
			expectError: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := newServeContext()
			ctx.Config.TLS = tc.tls
			err := ctx.verifyTLSFlags()
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServeContextModes(t *testing.T) {
	ctx := newServeContext()
	assert.True(t, ctx.insecure())
	assert.False(t, ctx.mutualTLS())

	ctx.Config.TLS = config.TLSParameters{CertFile: "cert.pem", KeyFile: "key.pem"}
	assert.False(t, ctx.insecure())
	assert.False(t, ctx.mutualTLS())

	ctx.Config.TLS.CAFile = "ca.pem"
	assert.False(t, ctx.insecure())
	assert.True(t, ctx.mutualTLS())
}

func TestServeContextCertificateHandling(t *testing.T) {
	// Create trusted CA, server and client certs.
	trustedCACert := certyaml.Certificate{
		Subject: "cn=trusted-ca",
	}
	serverCertBeforeRotation := certyaml.Certificate{
		Subject:         "cn=server-before-rotation",
		SubjectAltNames: []string{"DNS:localhost"},
		Issuer:          &trustedCACert,
	}
	serverCertAfterRotation := certyaml.Certificate{
		Subject:         "cn=server-after-rotation",
		SubjectAltNames: []string{"DNS:localhost"},
		Issuer:          &trustedCACert,
	}
	trustedClientCert := certyaml.Certificate{
		Subject: "cn=trusted-client",
		Issuer:  &trustedCACert,
	}

	// Create another CA and a client cert to test that untrusted clients are denied.
	untrustedCACert := certyaml.Certificate{
		Subject: "cn=untrusted-ca",
	}
	untrustedClientCert := certyaml.Certificate{
		Subject: "cn=untrusted-client",
		Issuer:  &untrustedCACert,
	}

	caCertPool := x509.NewCertPool()
	ca, err := trustedCACert.X509Certificate()
	require.NoError(t, err)
	caCertPool.AddCert(&ca)

	tests := map[string]struct {
		serverCredentials *certyaml.Certificate
		clientCredentials *certyaml.Certificate
		expectError       bool
	}{
		"successful TLS connection established": {
			serverCredentials: &serverCertBeforeRotation,
			clientCredentials: &trustedClientCert,
			expectError:       false,
		},
		"rotating server credentials returns new server cert": {
			serverCredentials: &serverCertAfterRotation,
			clientCredentials: &trustedClientCert,
			expectError:       false,
		},
		"rotating server credentials again to ensure rotation can be repeated": {
			serverCredentials: &serverCertBeforeRotation,
			clientCredentials: &trustedClientCert,
			expectError:       false,
		},
		"fail to connect with client certificate which is not signed by correct CA": {
			serverCredentials: &serverCertBeforeRotation,
			clientCredentials: &untrustedClientCert,
			expectError:       true,
		},
	}

	// Create temporary directory to store certificates and key for the server.
	configDir, err := os.MkdirTemp("", "taskd-testdata-")
	require.NoError(t, err)
	defer os.RemoveAll(configDir)

	ctx := newServeContext()
	ctx.Config.TLS = config.TLSParameters{
		CAFile:   filepath.Join(configDir, "CAcert.pem"),
		CertFile: filepath.Join(configDir, "servercert.pem"),
		KeyFile:  filepath.Join(configDir, "serverkey.pem"),
	}

	// Initial set of credentials must be written into temp directory before
	// starting the tests to avoid error at server startup.
	err = trustedCACert.WritePEM(ctx.Config.TLS.CAFile, filepath.Join(configDir, "CAkey.pem"))
	require.NoError(t, err)
	err = serverCertBeforeRotation.WritePEM(ctx.Config.TLS.CertFile, ctx.Config.TLS.KeyFile)
	require.NoError(t, err)

	// Start a dummy server.
	log := fixture.NewTestLogger(t)
	opts := ctx.grpcOptions(log)
	g := grpc.NewServer(opts...)
	require.NotNil(t, g)

	l, err := net.Listen("tcp", "localhost:")
	require.NoError(t, err)
	address := l.Addr().String()

	go func() {
		// If server fails to start, connecting to it below will fail so
		// can ignore the error.
		_ = g.Serve(l)
	}()
	defer g.GracefulStop()

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// Store certificate and key to temp dir used by serveContext.
			err = tc.serverCredentials.WritePEM(ctx.Config.TLS.CertFile, ctx.Config.TLS.KeyFile)
			require.NoError(t, err)
			clientCert, err := tc.clientCredentials.TLSCertificate()
			require.NoError(t, err)
			receivedCert, err := tryConnect(address, clientCert, caCertPool)
			if tc.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				expectedCert, err := tc.serverCredentials.X509Certificate()
				require.NoError(t, err)
				assert.Equal(t, &expectedCert, receivedCert)
			}
		})
	}
}

// tryConnect opens a new TLS connection for testing.
func tryConnect(address string, clientCert tls.Certificate, caCertPool *x509.CertPool) (*x509.Certificate, error) {
	clientConfig := &tls.Config{
		ServerName:   "localhost",
		MinVersion:   tls.VersionTLS12,
		Certificates: []tls.Certificate{clientCert},
		RootCAs:      caCertPool,
	}
	conn, err := tls.Dial("tcp", address, clientConfig)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	err = peekError(conn)
	if err != nil {
		return nil, err
	}

	return conn.ConnectionState().PeerCertificates[0], nil
}

// peekError checks if the connection is closed by the remote peer. With
// TLS 1.3 the client certificate is rejected only after the handshake
// has completed on the client side, so a short read is needed to
// observe the alert.
func peekError(conn net.Conn) error {
	_ = conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	buf := make([]byte, 1)
	_, err := conn.Read(buf)
	if err != nil {
		if netErr, ok := err.(net.Error); !ok || !netErr.Timeout() {
			return err
		}
	}
	return nil
}
