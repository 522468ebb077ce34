package qkview

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
)

func metadataTools() []api.ServerTool {
	return []api.ServerTool{
		{
			Tool: api.Tool{
				Name:        "qkview_metadata_get",
				Description: "Get metadata for a specific QKView including serial number, timestamps, and case info",
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
			Handler: metadataGet,
		},
		{
			Tool: api.Tool{
				Name:        "qkview_metadata_update",
				Description: "Update metadata for a specific QKView such as description, visibility, and case numbers",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"qkview_id": {
							Type:        "string",
							Description: "QKView ID",
						},
						"description": {
							Type:        "string",
							Description: "New description",
						},
						"visible_in_gui": {
							Type:        "string",
							Description: "Whether the QKView is visible in the iHealth GUI (true/false)",
						},
						"f5_support_case": {
							Type:        "string",
							Description: "F5 support case number",
						},
						"non_f5_case": {
							Type:        "string",
							Description: "Non-F5 case reference",
						},
					},
					Required: []string{"qkview_id"},
				},
			},
			Handler: metadataUpdate,
		},
	}
}

func metadataGet(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	qkviewID := params.GetString("qkview_id", "")
	if qkviewID == "" {
		return api.NewToolCallResult("", fmt.Errorf("qkview_id is required")), nil
	}

	result, err := params.Provider.GetQKViewMetadata(params.Context, qkviewID)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to get metadata for QKView %s: %w", qkviewID, err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}

func metadataUpdate(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	qkviewID := params.GetString("qkview_id", "")
	if qkviewID == "" {
		return api.NewToolCallResult("", fmt.Errorf("qkview_id is required")), nil
	}

	update := api.MetadataUpdate{
		Description:   params.GetString("description", ""),
		VisibleInGUI:  params.GetString("visible_in_gui", ""),
		F5SupportCase: params.GetString("f5_support_case", ""),
		NonF5Case:     params.GetString("non_f5_case", ""),
	}
	if update.IsZero() {
		return api.NewToolCallResult("", fmt.Errorf("at least one metadata field must be provided to update")), nil
	}

	result, err := params.Provider.UpdateQKViewMetadata(params.Context, qkviewID, update)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to update metadata for QKView %s: %w", qkviewID, err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}
