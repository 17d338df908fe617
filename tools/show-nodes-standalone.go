package main

import (
	"fmt"
	"os"

	"oneandone-compute/pkg/compute"
	"oneandone-compute/pkg/storage"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: show-nodes <node-id>")
		fmt.Println("   or: show-nodes all")
		os.Exit(1)
	}

	store := storage.NewFileStorage("")

	if os.Args[1] == "all" {
		nodes, err := store.ListNodes()
		if err != nil {
			fmt.Printf("Error loading nodes: %v\n", err)
			os.Exit(1)
		}

		if len(nodes) == 0 {
			fmt.Println("No nodes found in storage.")
			return
		}

		fmt.Printf("=== All Stored Nodes (%d total) ===\n\n", len(nodes))
		for i, node := range nodes {
			fmt.Printf("Node %d:\n", i+1)
			printNodeDetails(node)
			fmt.Println()
		}

	} else {
		node, err := store.GetNode(os.Args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		printNodeDetails(node)
	}
}

func printNodeDetails(node *compute.Node) {
	fmt.Printf("  Node ID: %s\n", node.ID)
	fmt.Printf("  Name: %s\n", node.Name)
	fmt.Printf("  State: %s\n", node.State)
	if len(node.PublicIPs) > 0 {
		fmt.Printf("  Public IPs: %s\n", node.JoinedIPs())
	}
	for key, value := range node.Extra {
		fmt.Printf("  %s: %v\n", key, value)
	}
}
