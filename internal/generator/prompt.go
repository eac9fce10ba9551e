package generator

import (
	"fmt"
	"strings"
)

func buildCampaignPrompt(req CampaignRequest) string {
	audience := req.TargetAudience
	if audience == "" {
		audience = "All Customers"
	}
	duration := req.Duration
	if duration == "" {
		duration = "Limited Time"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional restaurant marketing expert creating a campaign for %s.\n\n", req.MonthName)
	b.WriteString("CAMPAIGN REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- Staff Member: %s\n", req.StaffName)
	fmt.Fprintf(&b, "- Promotion Type: %s\n", req.PromotionType)
	fmt.Fprintf(&b, "- Campaign Goal: %s\n", req.Goal)
	fmt.Fprintf(&b, "- Target Audience: %s\n", audience)
	fmt.Fprintf(&b, "- Duration: %s\n\n", duration)
	b.WriteString("AVAILABLE DISHES TODAY:\n")
	b.WriteString(strings.Join(req.Dishes, ", "))
	b.WriteString("\n\nINSTRUCTIONS:\n")
	b.WriteString("1. Create an attractive, specific campaign using ONLY the dishes listed above\n")
	b.WriteString("2. Make the offer compelling with clear value proposition\n")
	b.WriteString("3. Include specific pricing or discount details\n")
	fmt.Fprintf(&b, "4. Focus on the campaign goal: %s\n", req.Goal)
	b.WriteString("5. Write in an engaging, marketing-friendly tone\n")
	b.WriteString("6. Keep it concise but impactful (2-3 paragraphs max)\n")
	b.WriteString("7. Include a clear call-to-action\n\n")
	b.WriteString("Create a professional marketing campaign now:")
	return b.String()
}

func buildScoringPrompt(campaignText string) string {
	var b strings.Builder
	b.WriteString("You are an expert in marketing strategy evaluation.\n\n")
	b.WriteString("Please rate the following restaurant marketing campaign out of 10, ")
	b.WriteString("it can be in decimals too for more precision like 6.10 but no decimal for 10.\n")
	b.WriteString("Consider creativity, clarity, relevance to reducing waste, and how convincing the offers are.\n\n")
	b.WriteString("Give ONLY the score (as a number), and nothing else.\n\n")
	fmt.Fprintf(&b, "Campaign:\n\"\"\"\n%s\n\"\"\"", campaignText)
	return b.String()
}
