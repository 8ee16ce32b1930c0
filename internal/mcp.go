package internal

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCPServer wraps the MCP server and application dependencies
type MCPServer struct {
	app       *App
	mcpServer *server.MCPServer
}

// NewMCPServer creates a new MCP server instance
func NewMCPServer(app *App) *MCPServer {
	mcpServer := server.NewMCPServer(
		"ytscribe-server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s := &MCPServer{
		app:       app,
		mcpServer: mcpServer,
	}

	// Register tools
	s.registerTools()

	return s
}

// registerTools registers all available MCP tools
func (s *MCPServer) registerTools() {
	// canonicalize_youtube_url tool (free - pure string normalization)
	s.mcpServer.AddTool(mcp.NewTool("canonicalize_youtube_url",
		mcp.WithDescription("Normalize a messy YouTube reference (URL with escaping artifacts, bare 11-character video ID, or partial watch?v= path) into a canonical https://www.youtube.com/watch?v=... URL. Unrecognized input is returned unchanged."),
		mcp.WithString("reference",
			mcp.Description("YouTube URL, video ID, or partial watch path"),
			mcp.Required(),
		),
	), s.handleCanonicalize)

	// transcribe_youtube_audio tool (paid - downloads and transcribes)
	s.mcpServer.AddTool(mcp.NewTool("transcribe_youtube_audio",
		mcp.WithDescription("Download a YouTube video's audio and transcribe it with the OpenAI Whisper API (PAID). Requires OPENAI_API_KEY to be configured. The transcript is also persisted to the transcripts directory. Ask the user for confirmation before calling this tool."),
		mcp.WithString("reference",
			mcp.Description("YouTube URL, video ID, or partial watch path"),
			mcp.Required(),
		),
	), s.handleTranscribe)
}

// handleCanonicalize implements the canonicalize_youtube_url tool
func (s *MCPServer) handleCanonicalize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reference, err := request.RequireString("reference")
	if err != nil {
		return mcp.NewToolResultError("reference parameter is required and must be a string"), nil
	}

	url := NormalizeInput(reference)
	MCPLogDebug("canonicalized %q to %q", reference, url)

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(url)},
	}, nil
}

// handleTranscribe implements the transcribe_youtube_audio tool
func (s *MCPServer) handleTranscribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reference, err := request.RequireString("reference")
	if err != nil {
		return mcp.NewToolResultError("reference parameter is required and must be a string"), nil
	}

	MCPLogInfo("transcribing %q", reference)
	transcript, transcriptPath, err := s.app.Transcribe(ctx, reference)
	if err != nil {
		MCPLogError("transcription failed: %v", err)
		return mcp.NewToolResultErrorFromErr("failed to transcribe audio", err), nil
	}

	MCPLogInfo("transcript saved to %s", transcriptPath)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(transcript)},
	}, nil
}

// Start starts the MCP server using the specified transport
func (s *MCPServer) Start(ctx context.Context, transport string, port int) error {
	if transport == "http" {
		httpServer := server.NewStreamableHTTPServer(s.mcpServer)
		addr := fmt.Sprintf(":%d", port)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return httpServer.Start(addr)
	}

	// Default to stdio transport
	return server.ServeStdio(s.mcpServer)
}
