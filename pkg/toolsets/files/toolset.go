package files

import (
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/toolsets"
)

// Toolset covers the files contained in a QKView.
type Toolset struct{}

// Name returns the toolset name
func (t *Toolset) Name() string {
	return "files"
}

// GetTools returns all tools in this toolset
func (t *Toolset) GetTools() []api.ServerTool {
	return fileTools()
}

func init() {
	toolsets.Register(&Toolset{})
}
