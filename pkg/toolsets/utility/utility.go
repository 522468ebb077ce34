package utility

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
)

func utilityTools() []api.ServerTool {
	return []api.ServerTool{
		{
			Tool: api.Tool{
				Name:        "api_info",
				Description: "Get F5 iHealth API version and operating parameters",
				InputSchema: &jsonschema.Schema{
					Type:       "object",
					Properties: map[string]*jsonschema.Schema{},
				},
			},
			Handler: apiInfo,
		},
		{
			Tool: api.Tool{
				Name:        "logs_search",
				Description: "Search through log files in a QKView for a specific term",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"qkview_id": {
							Type:        "string",
							Description: "QKView ID",
						},
						"search_term": {
							Type:        "string",
							Description: "Term to search for in the log files",
						},
					},
					Required: []string{"qkview_id", "search_term"},
				},
			},
			Handler: logsSearch,
		},
		{
			Tool: api.Tool{
				Name:        "credentials_validate",
				Description: "Validate that the F5 iHealth API credentials are configured and working",
				InputSchema: &jsonschema.Schema{
					Type:       "object",
					Properties: map[string]*jsonschema.Schema{},
				},
			},
			Handler: credentialsValidate,
		},
	}
}

func apiInfo(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	result, err := params.Provider.GetAPIInfo(params.Context)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to get API info: %w", err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}

func logsSearch(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	qkviewID := params.GetString("qkview_id", "")
	term := params.GetString("search_term", "")
	if qkviewID == "" || term == "" {
		return api.NewToolCallResult("", fmt.Errorf("qkview_id and search_term are required")), nil
	}

	result, err := params.Provider.SearchLogs(params.Context, qkviewID, term)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to search logs in QKView %s: %w", qkviewID, err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}

func credentialsValidate(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	if err := params.Provider.ValidateCredentials(params.Context); err != nil {
		return api.NewToolCallResult("", fmt.Errorf("credential validation failed: %w", err)), nil
	}
	return api.NewToolCallResult("Success: F5 iHealth API credentials are valid and authentication successful.", nil), nil
}
