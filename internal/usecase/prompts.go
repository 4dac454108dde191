package usecase

import (
	"fmt"
	"strings"

	"github.com/elysianestates/crm-api/internal/entity"
)

// BuildLeadInsightPrompt embeds the lead profile and the available inventory
// into the strategic-analysis request.
func BuildLeadInsightPrompt(lead *entity.Lead, properties []*entity.Property) string {
	titles := make([]string, 0, len(properties))
	for _, p := range properties {
		titles = append(titles, p.Title)
	}

	return fmt.Sprintf(`Analyze this HNI/NRI real estate lead and provide a high-level strategic recommendation for an agent.
Lead Name: %s
Residency: %s
Net Worth Estimate: %s
Budget: %s
Preferred Types: %s
Notes: %s

Available Luxury Inventory: %s

Provide:
1. A "Personality Snapshot" based on their profile.
2. Which property matches them best and WHY.
3. A suggested 1-sentence personalized opening line for a WhatsApp or Email outreach.

Keep it sophisticated and professional. Format in Markdown.`,
		lead.Name,
		lead.Citizenship,
		lead.NetWorth,
		lead.InvestmentBudget,
		strings.Join(lead.PreferredPropertyTypes, ", "),
		lead.Notes,
		strings.Join(titles, ", "),
	)
}

// BuildOutreachPrompt embeds the lead identity and one property into the
// draft request. The tone line differs by operator role: admins frame around
// negotiation leverage, marketing frames around wealth preservation and
// lifestyle positioning.
func BuildOutreachPrompt(lead *entity.Lead, property *entity.Property, role entity.Role) string {
	tone := "Sophisticated, exclusive, respectful of their time. Avoid generic sales talk. Emphasize negotiation-ready availability and priority access."
	if role == entity.RoleMarketing {
		tone = "Sophisticated, exclusive, respectful of their time. Avoid generic sales talk. Focus on wealth-preservation and lifestyle positioning."
	}

	return fmt.Sprintf(`Draft a personalized, high-end outreach email to a luxury real estate lead.
Recipient: %s (%s)
Property Highlight: %s in %s
Features: %s
Tone: %s

Mention that this listing is "off-market" and was curated specifically for their portfolio.`,
		lead.Name,
		lead.Citizenship,
		property.Title,
		property.Location,
		strings.Join(property.Amenities, ", "),
		tone,
	)
}
