package compute

import (
	"strings"
	"time"
)

// NodeState represents the normalized lifecycle state of a node
type NodeState string

const (
	StatePending   NodeState = "pending"
	StateRunning   NodeState = "running"
	StateRebooting NodeState = "rebooting"
	StateUnknown   NodeState = "unknown"
)

// Node represents a cloud server in the provider-agnostic model
type Node struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	State      NodeState              `json:"state"`
	PublicIPs  []string               `json:"public_ips"`
	PrivateIPs []string               `json:"private_ips,omitempty"`
	Extra      map[string]interface{} `json:"extra,omitempty"`
}

// NodeImage represents an OS image (server appliance) offered by the provider
type NodeImage struct {
	ID    string                 `json:"id"`
	Name  string                 `json:"name"`
	Extra map[string]interface{} `json:"extra,omitempty"`
}

// NodeLocation represents a datacenter the provider can deploy into
type NodeLocation struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// NodeSize represents a fixed instance size offered by the provider.
// RAM is in MB, Disk in GB.
type NodeSize struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	RAM       int                    `json:"ram"`
	Disk      int                    `json:"disk"`
	Bandwidth int                    `json:"bandwidth"`
	Price     float64                `json:"price"`
	Extra     map[string]interface{} `json:"extra,omitempty"`
}

// IsRunning checks if the node is in the running state
func (n *Node) IsRunning() bool {
	return n.State == StateRunning
}

// PrimaryIP returns the first public IP of the node, or an empty string
func (n *Node) PrimaryIP() string {
	if len(n.PublicIPs) > 0 {
		return n.PublicIPs[0]
	}
	return ""
}

// JoinedIPs returns the public IPs as a single comma-separated string
func (n *Node) JoinedIPs() string {
	return strings.Join(n.PublicIPs, ", ")
}

// NodeRecord represents a node record for storage
type NodeRecord struct {
	Node      *Node     `json:"node"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
