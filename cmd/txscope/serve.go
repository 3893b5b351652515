package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/cuemby/txscope/pkg/log"
	"github.com/cuemby/txscope/pkg/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve metrics and health endpoints",
	Long: `Serve starts an HTTP listener exposing Prometheus metrics and the
health/readiness/liveness endpoints, for use alongside a host process that
calls interpreter.Run directly.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:9090", "Address to bind the metrics server to")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")

	metrics.SetVersion(Version)
	metrics.RegisterComponent("engine", true, "ready")

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/health", metrics.HealthHandler())
	mux.Handle("/ready", metrics.ReadyHandler())
	mux.Handle("/live", metrics.LivenessHandler())

	log.Logger.Info().Str("addr", addr).Msg("serving metrics and health endpoints")
	fmt.Printf("✓ Metrics endpoint: http://%s/metrics\n", addr)
	fmt.Printf("✓ Health endpoints:\n")
	fmt.Printf("  - Health check: http://%s/health\n", addr)
	fmt.Printf("  - Readiness:    http://%s/ready\n", addr)
	fmt.Printf("  - Liveness:     http://%s/live\n", addr)

	return http.ListenAndServe(addr, mux)
}
