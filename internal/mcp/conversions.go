package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-mcp-api/internal/config"
)

type UploadOfflineConversionInput struct {
	CustomerID         string  `json:"customer_id" jsonschema:"the customer account id, digits only"`
	ConversionActionID string  `json:"conversion_action_id" jsonschema:"the conversion action id, digits only"`
	Gclid              string  `json:"gclid" jsonschema:"Google click identifier"`
	ConversionDateTime string  `json:"conversion_date_time" jsonschema:"timestamp in yyyy-mm-dd hh:mm:ss+|-hh:mm format"`
	ConversionValue    float64 `json:"conversion_value,omitempty" jsonschema:"optional conversion value"`
	CurrencyCode       string  `json:"currency_code,omitempty" jsonschema:"optional ISO 4217 currency code"`
	LoginCustomerID    string  `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in UploadOfflineConversionInput) customer() string { return in.CustomerID }

type UploadOfflineConversionResult struct {
	ConversionAction   string `json:"conversion_action" jsonschema:"resource name of the conversion action"`
	ConversionDateTime string `json:"conversion_date_time" jsonschema:"timestamp of the uploaded conversion"`
	Gclid              string `json:"gclid" jsonschema:"Google click identifier of the uploaded conversion"`
}

func (d *deps) uploadOfflineConversion(ctx context.Context, _ *mcp.CallToolRequest, input UploadOfflineConversionInput) (*mcp.CallToolResult, UploadOfflineConversionResult, error) {
	result, err := d.integrator.UploadOfflineConversion(ctx, googleads.UploadConversionParams{
		CustomerID:         config.NormalizeCustomerID(input.CustomerID),
		ConversionActionID: input.ConversionActionID,
		Gclid:              input.Gclid,
		ConversionDateTime: input.ConversionDateTime,
		ConversionValue:    input.ConversionValue,
		CurrencyCode:       input.CurrencyCode,
		LoginCustomerID:    config.NormalizeCustomerID(input.LoginCustomerID),
	})
	if err != nil {
		return nil, UploadOfflineConversionResult{}, err
	}

	return nil, UploadOfflineConversionResult{
		ConversionAction:   result.ConversionAction,
		ConversionDateTime: result.ConversionDateTime,
		Gclid:              result.Gclid,
	}, nil
}

func registerConversionTools(server *mcp.Server, d *deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "upload_offline_conversion",
		Description: "Uploads an offline click conversion.",
	}, instrument(d, "upload_offline_conversion", d.uploadOfflineConversion))
}
