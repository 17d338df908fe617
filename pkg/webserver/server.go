package webserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"oneandone-compute/internal/utils"
	"oneandone-compute/pkg/compute"
	"oneandone-compute/pkg/storage"

	"github.com/sirupsen/logrus"
)

// Server holds the web server state
type Server struct {
	driver  compute.NodeDriver
	storage *storage.FileStorage
	logger  *logrus.Logger
	port    int
}

// APIResponse represents the API response format
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateNodeRequest represents the request to create a node
type CreateNodeRequest struct {
	Name   string `json:"name"`
	SizeID string `json:"size_id"`
}

// NewServer creates a new web server instance
func NewServer(driver compute.NodeDriver, storage *storage.FileStorage, logger *logrus.Logger, port int) *Server {
	return &Server{
		driver:  driver,
		storage: storage,
		logger:  logger,
		port:    port,
	}
}

// routes builds the request mux
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/nodes", s.handleNodes)
	mux.HandleFunc("/api/nodes/create", s.handleCreateNode)
	mux.HandleFunc("/api/images", s.handleImages)
	mux.HandleFunc("/api/sizes", s.handleSizes)
	mux.HandleFunc("/api/locations", s.handleLocations)
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Infof("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.routes())
}

// Handlers

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Service is healthy",
	})
}

func (s *Server) handleNodes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w)
		return
	}

	nodes, err := s.driver.ListNodes()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list nodes")
		s.jsonResponse(w, http.StatusBadGateway, APIResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to list nodes: %v", err),
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, APIResponse{Success: true, Data: nodes})
}

func (s *Server) handleImages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w)
		return
	}

	images, err := s.driver.ListImages()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list images")
		s.jsonResponse(w, http.StatusBadGateway, APIResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to list images: %v", err),
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, APIResponse{Success: true, Data: images})
}

func (s *Server) handleSizes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w)
		return
	}

	sizes, err := s.driver.ListSizes()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list sizes")
		s.jsonResponse(w, http.StatusBadGateway, APIResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to list sizes: %v", err),
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, APIResponse{Success: true, Data: sizes})
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w)
		return
	}

	locations, err := s.driver.ListLocations()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list locations")
		s.jsonResponse(w, http.StatusBadGateway, APIResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to list locations: %v", err),
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, APIResponse{Success: true, Data: locations})
}

func (s *Server) handleCreateNode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.methodNotAllowed(w)
		return
	}

	var req CreateNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, APIResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	if err := utils.ValidateNodeName(req.Name); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, APIResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}
	if req.SizeID == "" {
		s.jsonResponse(w, http.StatusBadRequest, APIResponse{
			Success: false,
			Error:   "size_id is required",
		})
		return
	}

	node, err := s.driver.CreateNode(req.Name, &compute.NodeSize{ID: req.SizeID}, nil, nil)
	if err != nil {
		s.logger.WithError(err).Error("Failed to create node")
		s.jsonResponse(w, http.StatusBadGateway, APIResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to create node: %v", err),
		})
		return
	}

	if err := s.storage.SaveNode(node); err != nil {
		s.logger.WithError(err).Warn("Failed to save node to storage")
	}

	s.jsonResponse(w, http.StatusCreated, APIResponse{
		Success: true,
		Message: "Node created",
		Data:    node,
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

// Helpers

func (s *Server) jsonResponse(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.WithError(err).Error("Failed to encode response")
	}
}

func (s *Server) methodNotAllowed(w http.ResponseWriter) {
	s.jsonResponse(w, http.StatusMethodNotAllowed, APIResponse{
		Success: false,
		Error:   "Method not allowed",
	})
}
