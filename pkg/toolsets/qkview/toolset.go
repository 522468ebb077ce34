package qkview

import (
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/toolsets"
)

// Toolset covers QKView collection management and metadata.
type Toolset struct{}

// Name returns the toolset name
func (t *Toolset) Name() string {
	return "qkview"
}

// GetTools returns all tools in this toolset
func (t *Toolset) GetTools() []api.ServerTool {
	tools := make([]api.ServerTool, 0)
	tools = append(tools, collectionTools()...)
	tools = append(tools, metadataTools()...)
	return tools
}

func init() {
	toolsets.Register(&Toolset{})
}
