package commands

import (
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/toolsets"
)

// Toolset covers tmsh command output captured in a QKView.
type Toolset struct{}

// Name returns the toolset name
func (t *Toolset) Name() string {
	return "commands"
}

// GetTools returns all tools in this toolset
func (t *Toolset) GetTools() []api.ServerTool {
	return commandTools()
}

func init() {
	toolsets.Register(&Toolset{})
}
