package telegram

import (
	"fmt"
	"strings"
	"time"

	"trading-habit-engine/internal/entity"
	"trading-habit-engine/internal/habit/engine"
	"trading-habit-engine/pkg/utils"
)

const maxMessageLength = 4090

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escape(s string) string {
	return markdownEscaper.Replace(s)
}

func alertEmoji(alertType entity.AlertType) string {
	switch alertType {
	case entity.AlertTypePanicSelling:
		return "😱"
	case entity.AlertTypeFomoBuying:
		return "🚀"
	case entity.AlertTypeConcentrationRisk:
		return "⚖️"
	default:
		return "🔔"
	}
}

// FormatBehavioralAlertForTelegram formats a triggered alert into a Markdown string for Telegram.
func FormatBehavioralAlertForTelegram(alert *entity.Alert) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%s *%s* [%s]\n", alertEmoji(alert.Type), alert.Type, alert.Severity))
	if alert.Trade != nil {
		builder.WriteString(fmt.Sprintf("📈 `%s` %s %g @ ₹%.2f\n",
			alert.Trade.Symbol, alert.Trade.Action, alert.Trade.Quantity, alert.Trade.Price))
	}
	builder.WriteString(fmt.Sprintf("🎯 *Risk Score:* %d/100\n", alert.EmotionalRiskScore))
	builder.WriteString(fmt.Sprintf("📝 %s\n", escape(alert.Message)))
	if alert.AIExplanation != "" {
		builder.WriteString(fmt.Sprintf("\n💡 _%s_\n", escape(alert.AIExplanation)))
	}
	builder.WriteString(fmt.Sprintf("\n%s\n", utils.PrettyDate(alert.Timestamp)))

	return truncate(builder.String())
}

// FormatHabitDigestForTelegram formats an engine stats snapshot into a Markdown string for Telegram.
func FormatHabitDigestForTelegram(stats engine.Stats, at time.Time) string {
	var builder strings.Builder

	builder.WriteString("--- 🧭 *Trading Discipline Digest* ---\n\n")
	builder.WriteString(fmt.Sprintf("🏅 *Habit Score:* %.1f/100\n", stats.HabitScore))
	builder.WriteString(fmt.Sprintf("🌡️ *Emotional Index:* %.1f/100\n", stats.EmotionalIndex))
	builder.WriteString(fmt.Sprintf("🚨 *Total Alerts:* %d\n", stats.TotalAlerts))
	builder.WriteString(fmt.Sprintf("🔁 *Trades Analysed:* %d\n", stats.TotalTradesAnalysed))
	builder.WriteString(fmt.Sprintf("📂 *Open Positions:* %d\n", stats.PortfolioPositions))

	if stats.CooldownRecommended {
		builder.WriteString("\n⏸️ *Cooldown recommended.* Step away from the screen before the next trade.\n")
	}

	builder.WriteString(fmt.Sprintf("\n%s\n", utils.PrettyDate(at)))
	return builder.String()
}

func truncate(s string) string {
	if len(s) <= maxMessageLength {
		return s
	}
	cut := maxMessageLength
	for cut > 0 && !utf8RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func utf8RuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
