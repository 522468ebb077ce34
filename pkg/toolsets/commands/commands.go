package commands

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
)

func commandTools() []api.ServerTool {
	return []api.ServerTool{
		{
			Tool: api.Tool{
				Name:        "commands_list",
				Description: "List available tmsh commands that can be retrieved from a QKView",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"qkview_id": {
							Type:        "string",
							Description: "QKView ID",
						},
					},
					Required: []string{"qkview_id"},
				},
			},
			Handler: commandsList,
		},
		{
			Tool: api.Tool{
				Name:        "command_output_get",
				Description: "Get the output of a specific tmsh command captured in the QKView",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"qkview_id": {
							Type:        "string",
							Description: "QKView ID",
						},
						"command_name": {
							Type:        "string",
							Description: "Name of the tmsh command",
						},
					},
					Required: []string{"qkview_id", "command_name"},
				},
			},
			Handler: commandOutputGet,
		},
	}
}

func commandsList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	qkviewID := params.GetString("qkview_id", "")
	if qkviewID == "" {
		return api.NewToolCallResult("", fmt.Errorf("qkview_id is required")), nil
	}

	result, err := params.Provider.ListCommands(params.Context, qkviewID)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list commands for QKView %s: %w", qkviewID, err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}

func commandOutputGet(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	qkviewID := params.GetString("qkview_id", "")
	command := params.GetString("command_name", "")
	if qkviewID == "" || command == "" {
		return api.NewToolCallResult("", fmt.Errorf("qkview_id and command_name are required")), nil
	}

	result, err := params.Provider.GetCommandOutput(params.Context, qkviewID, command)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to get output of %s from QKView %s: %w", command, qkviewID, err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}
