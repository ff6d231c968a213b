package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftLog strength training server. Browse the bilingual exercise catalog, log lift entries (weight, reps, sets, RPE), and review training history."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolAddExercise, Handler: h.addExercise},
		server.ServerTool{Tool: toolListEntries, Handler: h.listEntries},
		server.ServerTool{Tool: toolLogEntry, Handler: h.logEntry},
		server.ServerTool{Tool: toolDeleteEntry, Handler: h.deleteEntry},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resCatalog, Handler: h.catalog},
		server.ServerResource{Resource: resTodaysEntries, Handler: h.todaysEntries},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resCatalog = mcp.NewResource(
	"liftlog://catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All exercises with Spanish and English names, grouped by category"),
	mcp.WithMIMEType("application/json"),
)

var resTodaysEntries = mcp.NewResource(
	"liftlog://todays_entries",
	"Today's Entries",
	mcp.WithResourceDescription("Lift entries logged for today"),
	mcp.WithMIMEType("application/json"),
)
