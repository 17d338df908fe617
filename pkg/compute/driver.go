package compute

// NodeDriver defines the interface for compute providers
type NodeDriver interface {
	// ListNodes returns all servers known to the provider, in API response order
	ListNodes() ([]*Node, error)

	// ListImages returns the OS images available for new servers
	ListImages() ([]*NodeImage, error)

	// ListSizes returns the fixed instance sizes available for new servers
	ListSizes() ([]*NodeSize, error)

	// ListLocations returns the datacenters servers can be deployed into
	ListLocations() ([]*NodeLocation, error)

	// CreateNode provisions a new server and returns it in its initial state
	CreateNode(name string, size *NodeSize, image *NodeImage, location *NodeLocation) (*Node, error)
}
