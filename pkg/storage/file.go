package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"oneandone-compute/pkg/compute"
)

// FileStorage implements node record storage using a JSON file
type FileStorage struct {
	filePath string
	mutex    sync.RWMutex
}

// NewFileStorage creates a new file storage instance
func NewFileStorage(filePath string) *FileStorage {
	if filePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			filePath = "/tmp/oneandone-nodes.json"
		} else {
			filePath = filepath.Join(homeDir, ".oneandone", "nodes.json")
		}
	}

	// Ensure directory exists
	dir := filepath.Dir(filePath)
	_ = os.MkdirAll(dir, 0755)

	return &FileStorage{
		filePath: filePath,
	}
}

// StorageRecord represents the structure stored in the file
type StorageRecord struct {
	Nodes     map[string]*compute.NodeRecord `json:"nodes"`
	UpdatedAt time.Time                      `json:"updated_at"`
}

// SaveNode saves a node record to storage
func (fs *FileStorage) SaveNode(node *compute.Node) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	record := &compute.NodeRecord{
		Node:      node,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	data, err := fs.loadData()
	if err != nil {
		data = &StorageRecord{
			Nodes: make(map[string]*compute.NodeRecord),
		}
	}

	data.Nodes[node.ID] = record
	data.UpdatedAt = time.Now()

	return fs.saveData(data)
}

// GetNode retrieves a node record from storage
func (fs *FileStorage) GetNode(nodeID string) (*compute.Node, error) {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	data, err := fs.loadData()
	if err != nil {
		return nil, err
	}

	record, exists := data.Nodes[nodeID]
	if !exists {
		return nil, fmt.Errorf("node %s not found in storage", nodeID)
	}

	return record.Node, nil
}

// ListNodes returns all node records from storage
func (fs *FileStorage) ListNodes() ([]*compute.Node, error) {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	data, err := fs.loadData()
	if err != nil {
		if os.IsNotExist(err) {
			return []*compute.Node{}, nil
		}
		return nil, err
	}

	nodes := make([]*compute.Node, 0, len(data.Nodes))
	for _, record := range data.Nodes {
		nodes = append(nodes, record.Node)
	}

	return nodes, nil
}

// UpdateNode updates an existing node record in storage
func (fs *FileStorage) UpdateNode(node *compute.Node) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	data, err := fs.loadData()
	if err != nil {
		return err
	}

	record, exists := data.Nodes[node.ID]
	if !exists {
		return fmt.Errorf("node %s not found in storage", node.ID)
	}

	record.Node = node
	record.UpdatedAt = time.Now()
	data.UpdatedAt = time.Now()

	return fs.saveData(data)
}

// DeleteNode removes a node record from storage
func (fs *FileStorage) DeleteNode(nodeID string) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	data, err := fs.loadData()
	if err != nil {
		return err
	}

	if _, exists := data.Nodes[nodeID]; !exists {
		return fmt.Errorf("node %s not found in storage", nodeID)
	}

	delete(data.Nodes, nodeID)
	data.UpdatedAt = time.Now()

	return fs.saveData(data)
}

// loadData reads the storage file
func (fs *FileStorage) loadData() (*StorageRecord, error) {
	raw, err := os.ReadFile(fs.filePath)
	if err != nil {
		return nil, err
	}

	var data StorageRecord
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse storage file: %w", err)
	}

	if data.Nodes == nil {
		data.Nodes = make(map[string]*compute.NodeRecord)
	}

	return &data, nil
}

// saveData writes the storage file
func (fs *FileStorage) saveData(data *StorageRecord) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode storage data: %w", err)
	}

	return os.WriteFile(fs.filePath, raw, 0644)
}
