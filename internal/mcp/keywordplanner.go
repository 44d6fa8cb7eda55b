package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-mcp-api/internal/config"
)

type GenerateKeywordIdeasInput struct {
	CustomerID      string   `json:"customer_id" jsonschema:"the customer account id, digits only"`
	Keywords        []string `json:"keywords,omitempty" jsonschema:"seed keywords"`
	PageURL         string   `json:"page_url,omitempty" jsonschema:"optional landing page URL seed"`
	LanguageID      string   `json:"language_id,omitempty" jsonschema:"language criterion id, defaults to 1000 (English)"`
	GeoTargetIDs    []string `json:"geo_target_ids,omitempty" jsonschema:"optional geo target constant ids"`
	LoginCustomerID string   `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in GenerateKeywordIdeasInput) customer() string { return in.CustomerID }

type GenerateKeywordIdeasResult struct {
	Ideas []googleads.KeywordIdea `json:"ideas" jsonschema:"generated keyword ideas with historical metrics"`
}

func (d *deps) generateKeywordIdeas(ctx context.Context, _ *mcp.CallToolRequest, input GenerateKeywordIdeasInput) (*mcp.CallToolResult, GenerateKeywordIdeasResult, error) {
	if len(input.Keywords) == 0 && input.PageURL == "" {
		return nil, GenerateKeywordIdeasResult{}, fmt.Errorf("At least one of keywords or page_url is required")
	}

	ideas, err := d.integrator.GenerateKeywordIdeas(ctx, googleads.KeywordIdeasParams{
		CustomerID:      config.NormalizeCustomerID(input.CustomerID),
		Keywords:        input.Keywords,
		PageURL:         input.PageURL,
		LanguageID:      input.LanguageID,
		GeoTargetIDs:    input.GeoTargetIDs,
		LoginCustomerID: config.NormalizeCustomerID(input.LoginCustomerID),
	})
	if err != nil {
		return nil, GenerateKeywordIdeasResult{}, err
	}

	return nil, GenerateKeywordIdeasResult{Ideas: ideas}, nil
}

func registerKeywordPlannerTools(server *mcp.Server, d *deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_keyword_ideas",
		Description: "Generates keyword ideas using seed keywords and optionally a page URL.",
	}, instrument(d, "generate_keyword_ideas", d.generateKeywordIdeas))
}
