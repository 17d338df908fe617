package oneandone

import (
	"fmt"
	"net/http"

	"oneandone-compute/pkg/compute"
)

// API paths of the v1 surface
const (
	serversPath     = "/v1/servers"
	datacentersPath = "/v1/datacenters"
	appliancesPath  = "/v1/server_appliances"
	sizesPath       = "/v1/servers/fixed_instance_sizes"
)

// defaultApplianceID is the server appliance currently pinned for new
// servers; see CreateNode.
const defaultApplianceID = "7B9067380CB74BBDFE7F473DEEA2AF5C"

// v1Driver implements compute.NodeDriver against the CloudPanel v1 API
type v1Driver struct {
	conn    *Connection
	perPage int
}

func newV1Driver(key string, opts Options) compute.NodeDriver {
	return &v1Driver{
		conn:    NewConnection(key, opts.Host, opts.Port, !opts.Insecure),
		perPage: opts.PerPage,
	}
}

// list fetches a collection endpoint and decodes it into raw JSON objects
func (d *v1Driver) list(path string) ([]map[string]interface{}, error) {
	resp, err := d.conn.Request(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if !resp.Success() {
		return nil, resp.ParseError()
	}

	var items []map[string]interface{}
	if err := resp.Parse(&items); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return items, nil
}

// ListNodes returns all servers, in API response order
func (d *v1Driver) ListNodes() ([]*compute.Node, error) {
	items, err := d.list(serversPath)
	if err != nil {
		return nil, err
	}

	nodes := make([]*compute.Node, 0, len(items))
	for _, item := range items {
		node, err := mapNode(item)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// ListImages returns the available server appliances
func (d *v1Driver) ListImages() ([]*compute.NodeImage, error) {
	items, err := d.list(appliancesPath)
	if err != nil {
		return nil, err
	}

	images := make([]*compute.NodeImage, 0, len(items))
	for _, item := range items {
		image, err := mapImage(item)
		if err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, nil
}

// ListSizes returns the available fixed instance sizes
func (d *v1Driver) ListSizes() ([]*compute.NodeSize, error) {
	items, err := d.list(sizesPath)
	if err != nil {
		return nil, err
	}

	sizes := make([]*compute.NodeSize, 0, len(items))
	for _, item := range items {
		size, err := mapSize(item)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

// ListLocations returns the available datacenters
func (d *v1Driver) ListLocations() ([]*compute.NodeLocation, error) {
	items, err := d.list(datacentersPath)
	if err != nil {
		return nil, err
	}

	locations := make([]*compute.NodeLocation, 0, len(items))
	for _, item := range items {
		location, err := mapLocation(item)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}
	return locations, nil
}

// CreateNode provisions a new server with the given name and size.
//
// Known limitation: the image and location parameters are accepted for
// interface symmetry with other drivers but are not yet wired into the
// request. The appliance is pinned to defaultApplianceID and the datacenter
// is chosen by the API.
func (d *v1Driver) CreateNode(name string, size *compute.NodeSize, image *compute.NodeImage, location *compute.NodeLocation) (*compute.Node, error) {
	form := map[string]interface{}{
		"name":        name,
		"description": "test",
		"hardware": map[string]interface{}{
			"fixed_instance_size_id": size.ID,
		},
		"appliance_id": defaultApplianceID,
	}

	resp, err := d.conn.Request(http.MethodPost, serversPath, form)
	if err != nil {
		return nil, err
	}
	if !resp.Success() {
		return nil, resp.ParseError()
	}

	var body map[string]interface{}
	if err := resp.Parse(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// The API can report a failure in the body of an otherwise successful
	// response.
	if status, _ := body["status"].(string); status == "ERROR" {
		reason, _ := body["message"].(string)
		if errorMessage, ok := body["error_message"].(string); ok {
			reason = errorMessage
		}
		if reason == "" {
			reason = "unknown error"
		}
		return nil, &NodeCreationError{Reason: reason}
	}

	return mapNode(body)
}
