package oneandone

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oneandone-compute/pkg/compute"
)

// newTestDriver points a v1 driver at a test server
func newTestDriver(t *testing.T, server *httptest.Server) compute.NodeDriver {
	t.Helper()

	parsed, err := url.Parse(server.URL)
	require.NoError(t, err)
	host, portStr, err := net.SplitHostPort(parsed.Host)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	driver, err := NewDriver("test-token", "v1", Options{
		Host:     host,
		Port:     port,
		Insecure: true,
	})
	require.NoError(t, err)
	return driver
}

func TestV1Driver_RequestHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("X-token"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	driver := newTestDriver(t, server)
	_, err := driver.ListNodes()
	require.NoError(t, err)
}

func TestV1Driver_ListNodes(t *testing.T) {
	t.Run("maps servers in response order", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/servers", r.URL.Path)
			assert.Equal(t, http.MethodGet, r.Method)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[
				{"id": "b", "name": "second", "status": {"state": "POWERED_OFF"}},
				{"id": "a", "name": "first", "status": {"state": "POWERED_ON"}, "ips": "1.2.3.4"}
			]`))
		}))
		defer server.Close()

		nodes, err := newTestDriver(t, server).ListNodes()

		require.NoError(t, err)
		require.Len(t, nodes, 2)
		assert.Equal(t, "b", nodes[0].ID)
		assert.Equal(t, compute.StateRebooting, nodes[0].State)
		assert.Equal(t, "a", nodes[1].ID)
		assert.Equal(t, compute.StateRunning, nodes[1].State)
		assert.Equal(t, []string{"1.2.3.4"}, nodes[1].PublicIPs)
	})

	t.Run("401 yields invalid credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "bad token"}`))
		}))
		defer server.Close()

		_, err := newTestDriver(t, server).ListNodes()

		var credsErr *InvalidCredentialsError
		require.ErrorAs(t, err, &credsErr)
		assert.Equal(t, "bad token", credsErr.Message)
	})

	t.Run("server error yields formatted api error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "boom"}`))
		}))
		defer server.Close()

		_, err := newTestDriver(t, server).ListNodes()

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "boom (code: 500)", apiErr.Error())
	})
}

func TestV1Driver_ListLocations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/datacenters", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"id": "L1", "location": "Lon", "country_code": "GB"}]`))
	}))
	defer server.Close()

	locations, err := newTestDriver(t, server).ListLocations()

	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "L1", locations[0].ID)
	assert.Equal(t, "Lon", locations[0].Name)
	assert.Equal(t, "GB", locations[0].Country)
}

func TestV1Driver_ListImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/server_appliances", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"id": "img1", "name": "Ubuntu 22.04", "os": "Linux", "os_version": "Ubuntu", "architecture": 64}]`))
	}))
	defer server.Close()

	images, err := newTestDriver(t, server).ListImages()

	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "img1", images[0].ID)
	assert.Equal(t, "Linux", images[0].Extra["os"])
}

func TestV1Driver_ListSizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/servers/fixed_instance_sizes", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"id": "s1", "name": "M", "hardware": {"ram": "2", "vcore": 1, "hdds": [{"size": 40}]}}]`))
	}))
	defer server.Close()

	sizes, err := newTestDriver(t, server).ListSizes()

	require.NoError(t, err)
	require.Len(t, sizes, 1)
	assert.Equal(t, 2048, sizes[0].RAM)
	assert.Equal(t, 40, sizes[0].Disk)
}

func TestV1Driver_CreateNode(t *testing.T) {
	size := &compute.NodeSize{ID: "s1", Name: "M"}

	t.Run("posts the expected request body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/servers", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)

			var form map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&form))
			assert.Equal(t, "web-1", form["name"])
			assert.Equal(t, "test", form["description"])
			assert.Equal(t, defaultApplianceID, form["appliance_id"])
			hardware, ok := form["hardware"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "s1", hardware["fixed_instance_size_id"])

			w.WriteHeader(http.StatusAccepted)
			w.Write([]byte(`{"id": "srv1", "name": "web-1", "status": {"state": "DEPLOYING"}}`))
		}))
		defer server.Close()

		node, err := newTestDriver(t, server).CreateNode("web-1", size, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "srv1", node.ID)
		assert.Equal(t, compute.StatePending, node.State)
	})

	t.Run("vendor-level error status fails even on http success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status": "ERROR", "error_message": "quota exceeded"}`))
		}))
		defer server.Close()

		_, err := newTestDriver(t, server).CreateNode("web-1", size, nil, nil)

		var createErr *NodeCreationError
		require.ErrorAs(t, err, &createErr)
		assert.Equal(t, "quota exceeded", createErr.Reason)
	})

	t.Run("vendor-level error falls back to message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status": "ERROR", "message": "out of capacity"}`))
		}))
		defer server.Close()

		_, err := newTestDriver(t, server).CreateNode("web-1", size, nil, nil)

		var createErr *NodeCreationError
		require.ErrorAs(t, err, &createErr)
		assert.Equal(t, "out of capacity", createErr.Reason)
	})

	t.Run("http failure routes through the error decoder", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message": "name already in use"}`))
		}))
		defer server.Close()

		_, err := newTestDriver(t, server).CreateNode("web-1", size, nil, nil)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "name already in use (code: 400)", apiErr.Error())
	})
}
