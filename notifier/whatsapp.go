package notifier

import (
	"fmt"
	"net/url"
	"strings"

	"bakery-api/models"
)

// FormatOrderWhatsApp renders the chat message used by the WhatsApp
// fallback.
func FormatOrderWhatsApp(order models.Order) string {
	lines := []string{
		"🍰 *PEDIDO - Sabor de Emociones*",
		"",
		fmt.Sprintf("👤 *Nombre:* %s", order.Name),
		fmt.Sprintf("📞 *Teléfono:* %s", order.Phone),
	}
	if order.Email != "" {
		lines = append(lines, fmt.Sprintf("📧 *Email:* %s", order.Email))
	}
	lines = append(lines, "", fmt.Sprintf("📍 *Tipo:* %s", modeLabel(order, true)))
	if order.Address != "" {
		lines = append(lines, fmt.Sprintf("🏠 *Dirección:* %s", order.Address))
	}
	if order.DesiredDate != "" {
		lines = append(lines, fmt.Sprintf("📅 *Fecha deseada:* %s", order.DesiredDate))
	}
	if order.GeneralNotes != "" {
		lines = append(lines, fmt.Sprintf("📝 *Notas:* %s", order.GeneralNotes))
	}
	lines = append(lines, "", "🍰 *Productos:*", "")

	for _, item := range order.Items {
		size := ""
		if item.Size != "" {
			size = fmt.Sprintf(" (%s)", item.Size)
		}
		line := fmt.Sprintf("• %s%s x%d", item.ProductName, size, item.Quantity)
		price := fmt.Sprintf("  $%.2f c/u", item.Price)
		if item.Notes != "" {
			price += fmt.Sprintf("\n   Nota: %s", item.Notes)
		}
		lines = append(lines, line, price, "")
	}

	lines = append(lines,
		fmt.Sprintf("💰 *Total estimado: $%.2f*", order.Total),
		"",
		"Gracias — Sabor de Emociones",
	)

	// Blank separator lines are dropped so the chat message stays compact.
	kept := lines[:0]
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// WhatsAppURL builds the wa.me deep link carrying the rendered order.
func WhatsAppURL(order models.Order, phone string) string {
	message := FormatOrderWhatsApp(order)
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}
