// Command imagen-mcp is an MCP stdio server exposing a generate_image tool
// backed by the Gemini Imagen API, plus a loopback HTTP server that makes the
// generated images retrievable.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hamflx/imagen3-mcp/internal/assets"
	"github.com/hamflx/imagen3-mcp/internal/imagen"
	"github.com/hamflx/imagen3-mcp/internal/mcpserver"
	"github.com/hamflx/imagen3-mcp/internal/store"
)

const (
	serverName    = "imagen3-mcp"
	serverVersion = "0.1.0"
	defaultAddr   = "127.0.0.1:9981"
)

var (
	version = serverVersion
	commit  = "dev"
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		addr       string
		dataDir    string
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "imagen-mcp",
		Short:         "MCP server that generates images with Imagen and serves them over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(addr, dataDir, configPath)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address for the image asset server")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "artifact directory (default: per-user application data directory)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to an optional YAML config file")
	return cmd
}

// run is the process supervisor. Startup order matters: the store and the
// credential are checked before either server binds anything, the asset
// server runs as a background task, and the stdio MCP session runs in the
// foreground. When the session ends the asset server is canceled without
// draining and the process exits cleanly.
func run(addr, dataDir, configPath string) error {
	st, err := openStore(dataDir)
	if err != nil {
		return err
	}

	cfg, err := imagen.GetConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	handler := &mcpserver.Handler{
		Generator: imagen.NewClient(cfg, st),
		AssetBase: "http://" + addr,
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, &mcp.ServerOptions{
		Instructions: mcpserver.Instructions,
	})

	tools := mcpserver.GetToolDefinitions()
	for _, toolDef := range tools {
		// Capture for closure
		td := toolDef
		server.AddTool(&mcp.Tool{
			Name:        td.Name,
			Description: td.Description,
			InputSchema: td.InputSchema,
		}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var args map[string]interface{}
			if req.Params.Arguments != nil {
				if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
					return &mcp.CallToolResult{
						Content: []mcp.Content{
							&mcp.TextContent{Text: "Error parsing arguments: " + err.Error()},
						},
						IsError: true,
					}, nil
				}
			}

			output, err := handler.ExecuteHandler(ctx, td.Name, args)
			if err != nil {
				return &mcp.CallToolResult{
					Content: []mcp.Content{
						&mcp.TextContent{Text: "Error: " + err.Error()},
					},
					IsError: true,
				}, nil
			}
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					&mcp.TextContent{Text: output},
				},
			}, nil
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The MCP session is not part of the group: its clean return must still
	// cancel the asset server, and errgroup only cancels on error returns.
	g, gctx := errgroup.WithContext(ctx)
	assetSrv := assets.NewServer(st)
	g.Go(func() error {
		return assetSrv.Serve(gctx, addr)
	})

	fmt.Fprintf(os.Stderr, "%s v%s started with %d tools, assets on http://%s\n",
		serverName, serverVersion, len(tools), addr)

	runErr := server.Run(gctx, &mcp.StdioTransport{})
	cancel()
	if err := g.Wait(); err != nil {
		return fmt.Errorf("asset server error: %w", err)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return fmt.Errorf("server error: %w", runErr)
	}
	return nil
}

func openStore(dataDir string) (*store.Store, error) {
	if dataDir != "" {
		return store.Open(dataDir)
	}
	return store.Default()
}
