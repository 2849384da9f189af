package repository

import (
	"fmt"
	"strings"

	"trading-habit-engine/internal/entity"
)

// BuildBehavioralExplanationPrompt builds the coaching prompt for an alert.
func BuildBehavioralExplanationPrompt(alert *entity.Alert) string {
	var sb strings.Builder

	sb.WriteString("You are a behavioural finance coach helping Indian retail investors.\n\n")
	sb.WriteString("A trader just triggered the following behavioural alert:\n")
	sb.WriteString(fmt.Sprintf("Alert Type: %s\n", alert.Type))
	sb.WriteString(fmt.Sprintf("Risk Score: %d/100\n", alert.EmotionalRiskScore))
	sb.WriteString(fmt.Sprintf("Message: %s\n", alert.Message))
	if alert.Trade != nil {
		sb.WriteString(fmt.Sprintf("Trade: %s %g shares of %s @ ₹%.2f\n",
			alert.Trade.Action, alert.Trade.Quantity, alert.Trade.Symbol, alert.Trade.Price))
	}
	sb.WriteString("\nRespond in exactly 4 concise sentences:\n")
	sb.WriteString("1. Name the cognitive bias behind this trade.\n")
	sb.WriteString("2. Explain how it can harm long-term returns.\n")
	sb.WriteString("3. Give one specific, actionable tip to avoid it next time.\n")
	sb.WriteString("4. Close with a short, empathetic word of encouragement.\n")
	sb.WriteString("Do not use markdown, headings or bullet points.")

	return sb.String()
}
