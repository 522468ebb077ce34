package system

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
)

func bigipTools() []api.ServerTool {
	return []api.ServerTool{
		{
			Tool: api.Tool{
				Name:        "bigip_info",
				Description: "Get BIG-IP system information from a QKView including hardware, software, and licensing details",
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
			Handler: bigipInfo,
		},
		{
			Tool: api.Tool{
				Name:        "bigip_slot_info",
				Description: "Get BIG-IP information for a specific slot. Use slot 0 for appliances or specify blade slot for chassis.",
				InputSchema: slotSchema(),
			},
			Handler: slotHandler(func(ctx context.Context, p api.Provider, id string, slot int) (*api.Result, error) {
				return p.GetBigIPSlotInfo(ctx, id, slot)
			}),
		},
		{
			Tool: api.Tool{
				Name:        "hardware_info",
				Description: "Get hardware information from a QKView for a specific slot",
				InputSchema: slotSchema(),
			},
			Handler: slotHandler(func(ctx context.Context, p api.Provider, id string, slot int) (*api.Result, error) {
				return p.GetHardwareInfo(ctx, id, slot)
			}),
		},
		{
			Tool: api.Tool{
				Name:        "software_info",
				Description: "Get software version information from a QKView for a specific slot",
				InputSchema: slotSchema(),
			},
			Handler: slotHandler(func(ctx context.Context, p api.Provider, id string, slot int) (*api.Result, error) {
				return p.GetSoftwareInfo(ctx, id, slot)
			}),
		},
		{
			Tool: api.Tool{
				Name:        "license_info",
				Description: "Get licensing information from a QKView for a specific slot",
				InputSchema: slotSchema(),
			},
			Handler: slotHandler(func(ctx context.Context, p api.Provider, id string, slot int) (*api.Result, error) {
				return p.GetLicenseInfo(ctx, id, slot)
			}),
		},
	}
}

func slotSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"qkview_id": {
				Type:        "string",
				Description: "QKView ID",
			},
			"slot_number": {
				Type:        "integer",
				Description: "Slot number: 0 for appliances, blade slot for chassis (default 0)",
			},
		},
		Required: []string{"qkview_id"},
	}
}

// slotHandler wraps the common qkview_id/slot_number argument handling
// around a per-slot provider call.
func slotHandler(call func(ctx context.Context, p api.Provider, id string, slot int) (*api.Result, error)) api.ToolHandlerFunc {
	return func(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
		qkviewID := params.GetString("qkview_id", "")
		if qkviewID == "" {
			return api.NewToolCallResult("", fmt.Errorf("qkview_id is required")), nil
		}
		slot := params.GetInt("slot_number", 0)

		result, err := call(params.Context, params.Provider, qkviewID, slot)
		if err != nil {
			return api.NewToolCallResult("", fmt.Errorf("failed to get slot %d info for QKView %s: %w", slot, qkviewID, err)), nil
		}
		return api.NewToolCallResult(result.Text(), nil), nil
	}
}

func bigipInfo(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	qkviewID := params.GetString("qkview_id", "")
	if qkviewID == "" {
		return api.NewToolCallResult("", fmt.Errorf("qkview_id is required")), nil
	}

	result, err := params.Provider.GetBigIPInfo(params.Context, qkviewID)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to get BIG-IP info for QKView %s: %w", qkviewID, err)), nil
	}
	return api.NewToolCallResult(result.Text(), nil), nil
}
