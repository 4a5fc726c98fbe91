package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/networth/internal/infrastructure/logging"
)

var (
	baseURL string
	timeout time.Duration
	token   string
	logger  = logging.New("info", "text")
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "networth-cli",
		Short: "Net worth tracker CLI tool",
		Long:  `A command line interface for interacting with the net worth tracker API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the net worth API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token (when auth is enabled)")

	snapshotsCmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Net worth snapshot operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the snapshot series",
		Run: func(cmd *cobra.Command, args []string) {
			listSnapshots()
		},
	}

	recalculateCmd := &cobra.Command{
		Use:   "recalculate",
		Short: "Rebuild the snapshot series from current records",
		Run: func(cmd *cobra.Command, args []string) {
			recalculate()
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the snapshot series",
		Run: func(cmd *cobra.Command, args []string) {
			clearSnapshots()
		},
	}

	snapshotsCmd.AddCommand(listCmd, recalculateCmd, clearCmd)
	rootCmd.AddCommand(snapshotsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func doRequest(method, path string) []byte {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(method, baseURL+path, nil)
	if err != nil {
		logger.Error("failed to build request", "error", err)
		os.Exit(1)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		logger.Error("request failed", "error", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("unexpected status", "status", resp.StatusCode, "response", string(body))
		os.Exit(1)
	}

	return body
}

func listSnapshots() {
	body := doRequest(http.MethodGet, "/api/v1/net-worth/snapshots")
	printSnapshots(body)
}

func recalculate() {
	body := doRequest(http.MethodPost, "/api/v1/net-worth/recalculate")
	printSnapshots(body)
}

func clearSnapshots() {
	doRequest(http.MethodDelete, "/api/v1/net-worth/snapshots")
	fmt.Println("Snapshots cleared")
}

type snapshotList struct {
	Snapshots []struct {
		SnapshotDate string `json:"snapshot_date"`
		Total        string `json:"total"`
	} `json:"snapshots"`
	Total int `json:"total"`
}

func printSnapshots(body []byte) {
	var result snapshotList
	if err := json.Unmarshal(body, &result); err != nil {
		logger.Error("failed to parse response", "error", err)
		os.Exit(1)
	}

	for _, s := range result.Snapshots {
		fmt.Printf("%s  %s\n", s.SnapshotDate, s.Total)
	}
	fmt.Printf("%d snapshot(s)\n", result.Total)
}
