package files

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
)

func fileTools() []api.ServerTool {
	return []api.ServerTool{
		{
			Tool: api.Tool{
				Name:        "files_list",
				Description: "List all files contained within a QKView, referenced by hash",
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
			Handler: filesList,
		},
		{
			Tool: api.Tool{
				Name:        "file_get",
				Description: "Download a specific file from a QKView by its hash. Use 'qkview' as file_hash to get the original file.",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"qkview_id": {
							Type:        "string",
							Description: "QKView ID",
						},
						"file_hash": {
							Type:        "string",
							Description: "File hash, or 'qkview' for the originally uploaded file",
						},
					},
					Required: []string{"qkview_id", "file_hash"},
				},
			},
			Handler: fileGet,
		},
		{
			Tool: api.Tool{
				Name:        "qkview_download",
				Description: "Download the original QKView file that was uploaded",
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
			Handler: qkviewDownload,
		},
	}
}

func filesList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	qkviewID := params.GetString("qkview_id", "")
	if qkviewID == "" {
		return api.NewToolCallResult("", fmt.Errorf("qkview_id is required")), nil
	}

	result, err := params.Provider.ListFiles(params.Context, qkviewID)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list files for QKView %s: %w", qkviewID, err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}

func fileGet(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	qkviewID := params.GetString("qkview_id", "")
	fileHash := params.GetString("file_hash", "")
	if qkviewID == "" || fileHash == "" {
		return api.NewToolCallResult("", fmt.Errorf("qkview_id and file_hash are required")), nil
	}

	result, err := params.Provider.GetFile(params.Context, qkviewID, fileHash)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to get file %s from QKView %s: %w", fileHash, qkviewID, err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}

func qkviewDownload(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	qkviewID := params.GetString("qkview_id", "")
	if qkviewID == "" {
		return api.NewToolCallResult("", fmt.Errorf("qkview_id is required")), nil
	}

	// The hash "qkview" addresses the originally uploaded file.
	result, err := params.Provider.GetFile(params.Context, qkviewID, "qkview")
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to download QKView %s: %w", qkviewID, err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}
