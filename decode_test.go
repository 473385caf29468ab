// FILE: lixenwraith/registry/decode_test.go
package registry

import (
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDecodeRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	r, err := New(newPrimary(Tree{
		"app.server": Tree{
			"host":     "localhost",
			"port":     int64(8080),
			"timeout":  "30s",
			"started":  "2024-01-02T15:04:05Z",
			"bind":     "192.168.1.10",
			"endpoint": "https://api.example.com/v1",
			"tags":     "a,b,c",
			"debug":    "true",
			"tls": Tree{
				"enabled": true,
				"cert":    "/etc/cert.pem",
			},
		},
	}), opts...)
	require.NoError(t, err)
	r.AddBackend(newSecondary(Tree{
		"app.server": Tree{
			"port":    int64(9090),
			"workers": int64(4),
		},
	}))
	return r
}

// TestDecodeWithComplexTypes tests decoding of the merged domain through the hooks
func TestDecodeWithComplexTypes(t *testing.T) {
	type TLS struct {
		Enabled bool   `config:"enabled"`
		Cert    string `config:"cert"`
	}
	type Server struct {
		Host     string        `config:"host"`
		Port     int           `config:"port"`
		Workers  int           `config:"workers"`
		Timeout  time.Duration `config:"timeout"`
		Started  time.Time     `config:"started"`
		Bind     net.IP        `config:"bind"`
		Endpoint *url.URL      `config:"endpoint"`
		Tags     []string      `config:"tags"`
		Debug    bool          `config:"debug"`
		TLS      TLS           `config:"tls"`
	}

	r := newDecodeRegistry(t)

	var server Server
	require.NoError(t, r.Decode("app.server", &server))

	assert.Equal(t, "localhost", server.Host)
	assert.Equal(t, 9090, server.Port, "later backends overwrite")
	assert.Equal(t, 4, server.Workers)
	assert.Equal(t, 30*time.Second, server.Timeout)
	assert.Equal(t, time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC), server.Started.UTC())
	assert.Equal(t, "192.168.1.10", server.Bind.String())
	require.NotNil(t, server.Endpoint)
	assert.Equal(t, "api.example.com", server.Endpoint.Host)
	assert.Equal(t, []string{"a", "b", "c"}, server.Tags)
	assert.True(t, server.Debug, "weakly typed string to bool")
	assert.Equal(t, TLS{Enabled: true, Cert: "/etc/cert.pem"}, server.TLS)
}

func TestDecodeSection(t *testing.T) {
	type TLS struct {
		Enabled bool   `config:"enabled"`
		Cert    string `config:"cert"`
	}

	r := newDecodeRegistry(t)

	t.Run("Nested", func(t *testing.T) {
		var tls TLS
		require.NoError(t, r.DecodeSection("app.server", "tls", &tls))
		assert.Equal(t, TLS{Enabled: true, Cert: "/etc/cert.pem"}, tls)
	})

	t.Run("MissingSectionIsEmpty", func(t *testing.T) {
		tls := TLS{Cert: "kept"}
		require.NoError(t, r.DecodeSection("app.server", "missing", &tls))
		assert.Equal(t, "kept", tls.Cert)
	})

	t.Run("MissingDomainIsEmpty", func(t *testing.T) {
		var tls TLS
		require.NoError(t, r.Decode("absent", &tls))
		assert.Equal(t, TLS{}, tls)
	})

	t.Run("NonMapSection", func(t *testing.T) {
		var tls TLS
		err := r.DecodeSection("app.server", "host", &tls)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "non-map value")
	})
}

func TestDecodeIntoMap(t *testing.T) {
	r := newDecodeRegistry(t)

	// Existing entries are dropped before decoding
	target := map[string]any{"stale": true}
	require.NoError(t, r.DecodeSection("app.server", "tls", &target))
	assert.Equal(t, map[string]any{"enabled": true, "cert": "/etc/cert.pem"}, target)
}

func TestDecodeTagName(t *testing.T) {
	type Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	}

	r := newDecodeRegistry(t, WithTagName("yaml"))

	var server Server
	require.NoError(t, r.Decode("app.server", &server))
	assert.Equal(t, "localhost", server.Host)
	assert.Equal(t, 9090, server.Port)
}

// TestInvalidDecodeTargets tests error handling for invalid targets and values
func TestInvalidDecodeTargets(t *testing.T) {
	r := newDecodeRegistry(t)

	t.Run("NonPointer", func(t *testing.T) {
		var target struct{}
		err := r.Decode("app.server", target)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "non-nil pointer")
	})

	t.Run("NilPointer", func(t *testing.T) {
		var target *struct{}
		err := r.Decode("app.server", target)
		assert.Error(t, err)
	})

	t.Run("InvalidIPAddress", func(t *testing.T) {
		r, err := New(newPrimary(Tree{"net": Tree{"ip": "not-an-ip"}}))
		require.NoError(t, err)

		var target struct {
			IP net.IP `config:"ip"`
		}
		err = r.Decode("net", &target)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid IP address")
	})

	t.Run("LongIPString", func(t *testing.T) {
		long := make([]byte, 50)
		for i := range long {
			long[i] = 'x'
		}
		r, err := New(newPrimary(Tree{"net": Tree{"ip": string(long)}}))
		require.NoError(t, err)

		var target struct {
			IP net.IP `config:"ip"`
		}
		err = r.Decode("net", &target)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid IP length")
	})

	t.Run("InvalidURL", func(t *testing.T) {
		r, err := New(newPrimary(Tree{"net": Tree{"endpoint": "://invalid-url"}}))
		require.NoError(t, err)

		var target struct {
			Endpoint *url.URL `config:"endpoint"`
		}
		err = r.Decode("net", &target)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid URL")
	})
}
