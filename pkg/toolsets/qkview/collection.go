package qkview

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
)

func collectionTools() []api.ServerTool {
	return []api.ServerTool{
		{
			Tool: api.Tool{
				Name:        "qkview_list",
				Description: "List all QKView IDs in your iHealth account collection",
				InputSchema: &jsonschema.Schema{
					Type:       "object",
					Properties: map[string]*jsonschema.Schema{},
				},
			},
			Handler: qkviewList,
		},
		{
			Tool: api.Tool{
				Name:        "qkview_upload",
				Description: "Upload a QKView file to iHealth for analysis",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"file_path": {
							Type:        "string",
							Description: "Path to the QKView file to upload",
						},
						"description": {
							Type:        "string",
							Description: "Description for the uploaded QKView",
						},
						"visible_in_gui": {
							Type:        "string",
							Description: "Whether the QKView is visible in the iHealth GUI (true/false, default true)",
						},
						"f5_support_case": {
							Type:        "string",
							Description: "F5 support case number to associate with the QKView",
						},
						"share_with_case_owner": {
							Type:        "string",
							Description: "Whether to share the QKView with the case owner (true/false, default false)",
						},
					},
					Required: []string{"file_path"},
				},
			},
			Handler: qkviewUpload,
		},
		{
			Tool: api.Tool{
				Name:        "qkview_delete",
				Description: "Delete a specific QKView from your iHealth account by its ID",
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
			Handler: qkviewDelete,
		},
		{
			Tool: api.Tool{
				Name:        "qkview_delete_all",
				Description: "Delete ALL QKViews from your iHealth account. Use with extreme caution.",
				InputSchema: &jsonschema.Schema{
					Type:       "object",
					Properties: map[string]*jsonschema.Schema{},
				},
			},
			Handler: qkviewDeleteAll,
		},
	}
}

func qkviewList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	result, err := params.Provider.ListQKViews(params.Context)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list QKViews: %w", err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}

func qkviewUpload(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	filePath := params.GetString("file_path", "")
	if filePath == "" {
		return api.NewToolCallResult("", fmt.Errorf("file_path is required")), nil
	}

	f, err := os.Open(filePath)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to open QKView file: %w", err)), nil
	}
	defer f.Close()

	opts := api.UploadOptions{
		Filename:           filepath.Base(filePath),
		Content:            f,
		Description:        params.GetString("description", ""),
		VisibleInGUI:       params.GetString("visible_in_gui", "true"),
		F5SupportCase:      params.GetString("f5_support_case", ""),
		ShareWithCaseOwner: params.GetString("share_with_case_owner", "false"),
	}

	result, err := params.Provider.UploadQKView(params.Context, opts)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to upload QKView: %w", err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}

func qkviewDelete(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	qkviewID := params.GetString("qkview_id", "")
	if qkviewID == "" {
		return api.NewToolCallResult("", fmt.Errorf("qkview_id is required")), nil
	}

	result, err := params.Provider.DeleteQKView(params.Context, qkviewID)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to delete QKView %s: %w", qkviewID, err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}

func qkviewDeleteAll(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	result, err := params.Provider.DeleteAllQKViews(params.Context)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to delete QKViews: %w", err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}
