package diagnostics

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
)

func diagnosticsTools() []api.ServerTool {
	return []api.ServerTool{
		{
			Tool: api.Tool{
				Name:        "diagnostics_get",
				Description: "Get diagnostics for a QKView. Set diagnostic_set to 'hit' for issues found or 'miss' for passed checks. Output format may be json, xml, pdf or csv.",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"qkview_id": {
							Type:        "string",
							Description: "QKView ID",
						},
						"diagnostic_set": {
							Type:        "string",
							Description: "Filter: 'hit' for issues found, 'miss' for passed checks, omit for all",
						},
						"output_format": {
							Type:        "string",
							Description: "Response format: json (default), xml, pdf or csv",
						},
					},
					Required: []string{"qkview_id"},
				},
			},
			Handler: diagnosticsGet,
		},
		{
			Tool: api.Tool{
				Name:        "diagnostics_hits",
				Description: "Get only the diagnostic hits (issues found) for a QKView",
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
			Handler: diagnosticsHits,
		},
		{
			Tool: api.Tool{
				Name:        "diagnostics_misses",
				Description: "Get only the diagnostic misses (passed checks) for a QKView",
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
			Handler: diagnosticsMisses,
		},
	}
}

func diagnosticsGet(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	qkviewID := params.GetString("qkview_id", "")
	if qkviewID == "" {
		return api.NewToolCallResult("", fmt.Errorf("qkview_id is required")), nil
	}

	set := api.DiagnosticSetAll
	switch params.GetString("diagnostic_set", "") {
	case "hit":
		set = api.DiagnosticSetHit
	case "miss":
		set = api.DiagnosticSetMiss
	}

	format, err := api.ParseFormat(params.GetString("output_format", "json"))
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}

	result, err := params.Provider.GetDiagnostics(params.Context, qkviewID, set, format)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to get diagnostics for QKView %s: %w", qkviewID, err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}

func diagnosticsHits(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	return diagnosticsBySet(params, api.DiagnosticSetHit)
}

func diagnosticsMisses(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	return diagnosticsBySet(params, api.DiagnosticSetMiss)
}

func diagnosticsBySet(params api.ToolHandlerParams, set api.DiagnosticSet) (*api.ToolCallResult, error) {
	qkviewID := params.GetString("qkview_id", "")
	if qkviewID == "" {
		return api.NewToolCallResult("", fmt.Errorf("qkview_id is required")), nil
	}

	result, err := params.Provider.GetDiagnostics(params.Context, qkviewID, set, api.FormatJSON)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to get diagnostics for QKView %s: %w", qkviewID, err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}
