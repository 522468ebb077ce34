package diagnostics

import (
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/toolsets"
)

// Toolset covers QKView diagnostic results.
type Toolset struct{}

// Name returns the toolset name
func (t *Toolset) Name() string {
	return "diagnostics"
}

// GetTools returns all tools in this toolset
func (t *Toolset) GetTools() []api.ServerTool {
	return diagnosticsTools()
}

func init() {
	toolsets.Register(&Toolset{})
}
