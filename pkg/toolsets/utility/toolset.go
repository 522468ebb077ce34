package utility

import (
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/toolsets"
)

// Toolset covers API info, log search and credential validation.
type Toolset struct{}

// Name returns the toolset name
func (t *Toolset) Name() string {
	return "utility"
}

// GetTools returns all tools in this toolset
func (t *Toolset) GetTools() []api.ServerTool {
	return utilityTools()
}

func init() {
	toolsets.Register(&Toolset{})
}
