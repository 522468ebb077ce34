package system

import (
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/toolsets"
)

// Toolset covers BIG-IP system information extracted from a QKView.
type Toolset struct{}

// Name returns the toolset name
func (t *Toolset) Name() string {
	return "system"
}

// GetTools returns all tools in this toolset
func (t *Toolset) GetTools() []api.ServerTool {
	return bigipTools()
}

func init() {
	toolsets.Register(&Toolset{})
}
