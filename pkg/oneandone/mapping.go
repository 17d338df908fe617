package oneandone

import (
	"fmt"
	"strconv"

	"oneandone-compute/pkg/compute"
)

// nodeStateMap translates CloudPanel server states to normalized node states.
// POWERED_OFF maps to StateRebooting; this matches the established state
// table of the driver and is kept for compatibility.
var nodeStateMap = map[string]compute.NodeState{
	"DEPLOYING":   compute.StatePending,
	"POWERED_OFF": compute.StateRebooting,
	"POWERED_ON":  compute.StateRunning,
}

// nodeExtraKeys are vendor fields passed through into Node.Extra when present
var nodeExtraKeys = []string{"backups_active", "region_id", "image_id", "size_id"}

// sizeExtraKeys are hardware fields passed through into NodeSize.Extra when present
var sizeExtraKeys = []string{"vcore", "cores_per_processor"}

// stringField returns the named string field or a MissingFieldError
func stringField(data map[string]interface{}, field string) (string, error) {
	value, ok := data[field].(string)
	if !ok {
		return "", &MissingFieldError{Field: field}
	}
	return value, nil
}

// intField reads a numeric field that the API serializes either as a JSON
// number or as a numeric string
func intField(data map[string]interface{}, field string) (int, error) {
	switch value := data[field].(type) {
	case float64:
		return int(value), nil
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("field %q is not numeric: %w", field, err)
		}
		return n, nil
	default:
		return 0, &MissingFieldError{Field: field}
	}
}

// mapNode converts a raw server payload into a Node. Servers without a status
// block, or with an unrecognized state, map to StateUnknown. The ips field,
// when present and non-null, becomes a single-element address list.
func mapNode(data map[string]interface{}) (*compute.Node, error) {
	id, err := stringField(data, "id")
	if err != nil {
		return nil, err
	}
	name, err := stringField(data, "name")
	if err != nil {
		return nil, err
	}

	state := compute.StateUnknown
	if status, ok := data["status"].(map[string]interface{}); ok {
		if raw, ok := status["state"].(string); ok {
			if mapped, ok := nodeStateMap[raw]; ok {
				state = mapped
			}
		}
	}

	publicIPs := []string{}
	if ips, ok := data["ips"].(string); ok {
		publicIPs = []string{ips}
	}

	extra := map[string]interface{}{}
	for _, key := range nodeExtraKeys {
		if value, ok := data[key]; ok {
			extra[key] = value
		}
	}

	return &compute.Node{
		ID:        id,
		Name:      name,
		State:     state,
		PublicIPs: publicIPs,
		Extra:     extra,
	}, nil
}

// mapImage converts a raw server appliance payload into a NodeImage. The os,
// os_version and architecture fields are required.
func mapImage(data map[string]interface{}) (*compute.NodeImage, error) {
	id, err := stringField(data, "id")
	if err != nil {
		return nil, err
	}
	name, err := stringField(data, "name")
	if err != nil {
		return nil, err
	}

	extra := map[string]interface{}{}
	for _, key := range []string{"os", "os_version", "architecture"} {
		value, ok := data[key]
		if !ok {
			return nil, &MissingFieldError{Field: key}
		}
		extra[key] = value
	}

	return &compute.NodeImage{ID: id, Name: name, Extra: extra}, nil
}

// mapLocation converts a raw datacenter payload into a NodeLocation
func mapLocation(data map[string]interface{}) (*compute.NodeLocation, error) {
	id, err := stringField(data, "id")
	if err != nil {
		return nil, err
	}
	name, err := stringField(data, "location")
	if err != nil {
		return nil, err
	}
	country, err := stringField(data, "country_code")
	if err != nil {
		return nil, err
	}

	return &compute.NodeLocation{ID: id, Name: name, Country: country}, nil
}

// mapSize converts a raw fixed instance size payload into a NodeSize. The
// hardware block and its first hdds entry are required. RAM is reported by
// the API in GB and converted to MB. Bandwidth and price are not exposed by
// this API version and are fixed at zero.
func mapSize(data map[string]interface{}) (*compute.NodeSize, error) {
	id, err := stringField(data, "id")
	if err != nil {
		return nil, err
	}
	name, err := stringField(data, "name")
	if err != nil {
		return nil, err
	}

	hardware, ok := data["hardware"].(map[string]interface{})
	if !ok {
		return nil, &MissingFieldError{Field: "hardware"}
	}

	ram, err := intField(hardware, "ram")
	if err != nil {
		return nil, err
	}

	hdds, ok := hardware["hdds"].([]interface{})
	if !ok || len(hdds) == 0 {
		return nil, &MissingFieldError{Field: "hardware.hdds"}
	}
	first, ok := hdds[0].(map[string]interface{})
	if !ok {
		return nil, &MissingFieldError{Field: "hardware.hdds"}
	}
	disk, err := intField(first, "size")
	if err != nil {
		return nil, err
	}

	extra := map[string]interface{}{}
	for _, key := range sizeExtraKeys {
		if value, ok := hardware[key]; ok {
			extra[key] = value
		}
	}

	return &compute.NodeSize{
		ID:        id,
		Name:      name,
		RAM:       ram * 1024,
		Disk:      disk,
		Bandwidth: 0,
		Price:     0,
		Extra:     extra,
	}, nil
}
