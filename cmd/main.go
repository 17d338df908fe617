package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"oneandone-compute/internal/utils"
	"oneandone-compute/pkg/compute"
	"oneandone-compute/pkg/config"
	"oneandone-compute/pkg/oneandone"
	"oneandone-compute/pkg/storage"
	"oneandone-compute/pkg/webserver"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	nodeName   string
	sizeID     string
	imageID    string
	locationID string
	nodeID     string
	apiVersion string
	logLevel   string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "oneandone",
		Short: "1&1 Cloud Server management tool",
		Long:  "A tool for listing and creating 1&1 Cloud Servers through the CloudPanel API",
	}

	rootCmd.PersistentFlags().StringVar(&apiVersion, "api-version", "", "API version to use (default v1)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	var listNodesCmd = &cobra.Command{
		Use:   "list-nodes",
		Short: "List all servers",
		RunE:  runListNodes,
	}

	var listImagesCmd = &cobra.Command{
		Use:   "list-images",
		Short: "List available server appliances",
		RunE:  runListImages,
	}

	var listSizesCmd = &cobra.Command{
		Use:   "list-sizes",
		Short: "List available fixed instance sizes",
		RunE:  runListSizes,
	}

	var listLocationsCmd = &cobra.Command{
		Use:   "list-locations",
		Short: "List available datacenters",
		RunE:  runListLocations,
	}

	var createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a new server",
		Long:  "Create a new server with the specified name and fixed instance size",
		RunE:  runCreate,
	}

	createCmd.Flags().StringVarP(&nodeName, "name", "n", "", "Server name (required)")
	createCmd.Flags().StringVarP(&sizeID, "size-id", "s", "", "Fixed instance size ID (required)")
	createCmd.Flags().StringVarP(&imageID, "image-id", "i", "", "Server appliance ID (currently ignored by the API client)")
	createCmd.Flags().StringVarP(&locationID, "location-id", "l", "", "Datacenter ID (currently ignored by the API client)")
	if err := createCmd.MarkFlagRequired("name"); err != nil {
		log.Fatal(err)
	}
	if err := createCmd.MarkFlagRequired("size-id"); err != nil {
		log.Fatal(err)
	}

	var showCmd = &cobra.Command{
		Use:   "show",
		Short: "Show stored node data",
		Long:  "Show locally stored data for nodes created through this tool",
		RunE:  runShow,
	}

	showCmd.Flags().StringVar(&nodeID, "node-id", "", "Node ID to show (optional, shows all if not provided)")

	var webPort int
	var webCmd = &cobra.Command{
		Use:   "web",
		Short: "Start web server",
		Long:  "Start a web server for managing 1&1 servers through a browser interface",
		RunE:  runWeb,
	}

	webCmd.Flags().IntVarP(&webPort, "port", "p", 8080, "Port to run the web server on")

	rootCmd.AddCommand(listNodesCmd)
	rootCmd.AddCommand(listImagesCmd)
	rootCmd.AddCommand(listSizesCmd)
	rootCmd.AddCommand(listLocationsCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(webCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// newDriver builds a driver from the loaded configuration and flags
func newDriver() (compute.NodeDriver, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	version := cfg.APIVersion
	if apiVersion != "" {
		version = apiVersion
	}
	if err := utils.ValidateAPIVersion(version); err != nil {
		return nil, err
	}

	driver, err := oneandone.NewDriver(cfg.Token, version, oneandone.Options{
		Secret:   cfg.Secret,
		Host:     cfg.Host,
		Port:     cfg.Port,
		Insecure: cfg.Insecure,
		PerPage:  cfg.PerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}
	return driver, nil
}

func runListNodes(cmd *cobra.Command, args []string) error {
	driver, err := newDriver()
	if err != nil {
		return err
	}

	nodes, err := driver.ListNodes()
	if err != nil {
		return fmt.Errorf("failed to list nodes: %w", err)
	}

	if len(nodes) == 0 {
		fmt.Println("No servers found.")
		return nil
	}

	fmt.Printf("Servers:\n\n")
	for _, node := range nodes {
		fmt.Printf("Node ID: %s\n", node.ID)
		fmt.Printf("  Name: %s\n", node.Name)
		fmt.Printf("  State: %s\n", utils.FormatState(node.State))
		fmt.Printf("  Public IPs: %s\n", utils.FormatIPs(node.PublicIPs))
		if sizeRef, ok := node.Extra["size_id"]; ok {
			fmt.Printf("  Size: %v\n", sizeRef)
		}
		fmt.Println()
	}

	return nil
}

func runListImages(cmd *cobra.Command, args []string) error {
	driver, err := newDriver()
	if err != nil {
		return err
	}

	images, err := driver.ListImages()
	if err != nil {
		return fmt.Errorf("failed to list images: %w", err)
	}

	if len(images) == 0 {
		fmt.Println("No server appliances found.")
		return nil
	}

	fmt.Printf("Server Appliances:\n\n")
	for _, image := range images {
		fmt.Printf("Image ID: %s\n", image.ID)
		fmt.Printf("  Name: %s\n", image.Name)
		fmt.Printf("  OS: %v %v\n", image.Extra["os"], image.Extra["os_version"])
		fmt.Printf("  Architecture: %v\n", image.Extra["architecture"])
		fmt.Println()
	}

	return nil
}

func runListSizes(cmd *cobra.Command, args []string) error {
	driver, err := newDriver()
	if err != nil {
		return err
	}

	sizes, err := driver.ListSizes()
	if err != nil {
		return fmt.Errorf("failed to list sizes: %w", err)
	}

	if len(sizes) == 0 {
		fmt.Println("No fixed instance sizes found.")
		return nil
	}

	fmt.Printf("Fixed Instance Sizes:\n\n")
	for _, size := range sizes {
		fmt.Printf("Size ID: %s\n", size.ID)
		fmt.Printf("  Name: %s\n", size.Name)
		fmt.Printf("  RAM: %s\n", utils.FormatRAM(size.RAM))
		fmt.Printf("  Disk: %dGB\n", size.Disk)
		if vcore, ok := size.Extra["vcore"]; ok {
			fmt.Printf("  vCores: %v\n", vcore)
		}
		fmt.Println()
	}

	return nil
}

func runListLocations(cmd *cobra.Command, args []string) error {
	driver, err := newDriver()
	if err != nil {
		return err
	}

	locations, err := driver.ListLocations()
	if err != nil {
		return fmt.Errorf("failed to list locations: %w", err)
	}

	if len(locations) == 0 {
		fmt.Println("No datacenters found.")
		return nil
	}

	fmt.Printf("Datacenters:\n\n")
	for _, location := range locations {
		fmt.Printf("%-38s %-20s %s\n", location.ID, location.Name, location.Country)
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	if err := utils.ValidateNodeName(nodeName); err != nil {
		return fmt.Errorf("invalid node name: %w", err)
	}

	driver, err := newDriver()
	if err != nil {
		return err
	}

	size := &compute.NodeSize{ID: sizeID}
	var image *compute.NodeImage
	if imageID != "" {
		image = &compute.NodeImage{ID: imageID}
		fmt.Println("Note: the image selection is not yet applied by the API client; the default appliance is used.")
	}
	var location *compute.NodeLocation
	if locationID != "" {
		location = &compute.NodeLocation{ID: locationID}
		fmt.Println("Note: the location selection is not yet applied by the API client; the datacenter is chosen by the API.")
	}

	fmt.Printf("Creating server:\n")
	fmt.Printf("  Name: %s\n", nodeName)
	fmt.Printf("  Size ID: %s\n", sizeID)
	fmt.Printf("\nCreating server...\n")

	node, err := driver.CreateNode(nodeName, size, image, location)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Save node to storage
	store := storage.NewFileStorage("")
	if err := store.SaveNode(node); err != nil {
		log.Printf("Warning: failed to save node to storage: %v", err)
	}

	fmt.Printf("\nServer created successfully!\n")
	fmt.Printf("  Node ID: %s\n", node.ID)
	fmt.Printf("  State: %s\n", utils.FormatState(node.State))
	if ip := node.PrimaryIP(); ip != "" {
		fmt.Printf("  Public IP: %s\n", ip)
	}
	fmt.Printf("\nUse 'oneandone list-nodes' to check deployment progress\n")

	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	store := storage.NewFileStorage("")

	if nodeID == "" {
		nodes, err := store.ListNodes()
		if err != nil {
			return fmt.Errorf("failed to load nodes: %w", err)
		}

		if len(nodes) == 0 {
			fmt.Println("No nodes found in storage.")
			fmt.Println("Create a server first using: oneandone create --name web-1 --size-id <id>")
			return nil
		}

		fmt.Printf("=== All Stored Nodes (%d total) ===\n\n", len(nodes))
		for i, node := range nodes {
			fmt.Printf("Node %d:\n", i+1)
			printNodeDetails(node)
			fmt.Println()
		}
	} else {
		node, err := store.GetNode(nodeID)
		if err != nil {
			return fmt.Errorf("node %s not found: %w", nodeID, err)
		}
		printNodeDetails(node)
	}

	return nil
}

func printNodeDetails(node *compute.Node) {
	fmt.Printf("  Node ID: %s\n", node.ID)
	fmt.Printf("  Name: %s\n", node.Name)
	fmt.Printf("  State: %s\n", utils.FormatState(node.State))
	fmt.Printf("  Public IPs: %s\n", utils.FormatIPs(node.PublicIPs))
	for key, value := range node.Extra {
		fmt.Printf("  %s: %v\n", key, value)
	}
}

// getLogLevel parses log level string to logrus level
func getLogLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func runWeb(cmd *cobra.Command, args []string) error {
	driver, err := newDriver()
	if err != nil {
		return err
	}

	store := storage.NewFileStorage("")

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(getLogLevel(logLevel))
	logger.SetOutput(os.Stdout)

	webPort, _ := cmd.Flags().GetInt("port")
	server := webserver.NewServer(driver, store, logger, webPort)

	fmt.Printf("1&1 Node Manager web server starting on http://localhost:%d\n", webPort)
	fmt.Println("Press Ctrl+C to stop the server.")

	return server.Start()
}
