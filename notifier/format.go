package notifier

import (
	"fmt"
	"html"
	"strings"

	"bakery-api/models"
)

func modeLabel(order models.Order, short bool) string {
	if order.PickupOrDelivery == "pickup" {
		if short {
			return "Recoger"
		}
		return "Recoger en tienda"
	}
	return "Entrega a domicilio"
}

// FormatOrderText renders the plain-text email body.
func FormatOrderText(order models.Order) string {
	var b strings.Builder

	b.WriteString("NUEVO PEDIDO - Sabor de Emociones\n\n")

	b.WriteString("INFORMACIÓN DEL CLIENTE\n")
	fmt.Fprintf(&b, "Nombre: %s\n", order.Name)
	fmt.Fprintf(&b, "Teléfono: %s\n", order.Phone)
	if order.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", order.Email)
	}

	b.WriteString("\nDETALLES DE ENTREGA\n")
	fmt.Fprintf(&b, "Tipo: %s\n", modeLabel(order, false))
	if order.Address != "" {
		fmt.Fprintf(&b, "Dirección: %s\n", order.Address)
	}
	if order.DesiredDate != "" {
		fmt.Fprintf(&b, "Fecha deseada: %s\n", order.DesiredDate)
	}
	if order.GeneralNotes != "" {
		fmt.Fprintf(&b, "\nNotas generales: %s\n", order.GeneralNotes)
	}

	b.WriteString("\nPRODUCTOS\n")
	for _, item := range order.Items {
		size := ""
		if item.Size != "" {
			size = fmt.Sprintf(" (%s)", item.Size)
		}
		fmt.Fprintf(&b, "%s%s - Cantidad: %d - Precio: $%.2f c/u", item.ProductName, size, item.Quantity, item.Price)
		if item.Notes != "" {
			fmt.Fprintf(&b, "\n  Nota: %s", item.Notes)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nTOTAL ESTIMADO: $%.2f\n\n", order.Total)
	b.WriteString("Gracias por elegir Sabor de Emociones 💛")

	return b.String()
}

// FormatOrderHTML renders the styled email body. Customer-supplied fields
// are escaped before interpolation.
func FormatOrderHTML(order models.Order) string {
	esc := html.EscapeString

	var items strings.Builder
	for _, item := range order.Items {
		size := ""
		if item.Size != "" {
			size = fmt.Sprintf(" (%s)", esc(item.Size))
		}
		notes := ""
		if item.Notes != "" {
			notes = fmt.Sprintf("<br><em>Nota: %s</em>", esc(item.Notes))
		}
		fmt.Fprintf(&items, `
          <div class="item">
            <strong>%s%s</strong><br>
            Cantidad: %d | Precio: $%.2f c/u%s
          </div>`, esc(item.ProductName), size, item.Quantity, item.Price, notes)
	}

	optional := func(label, value string) string {
		if value == "" {
			return ""
		}
		return fmt.Sprintf("<p><strong>%s:</strong> %s</p>", label, esc(value))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background: #1B1511; color: #F8D5A9; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
      .content { background: #fff; padding: 30px; border: 1px solid #ddd; }
      .section { margin-bottom: 25px; }
      .section-title { color: #A26D49; font-size: 18px; font-weight: bold; margin-bottom: 10px; }
      .item { padding: 10px 0; border-bottom: 1px solid #eee; }
      .total { font-size: 20px; font-weight: bold; color: #A26D49; text-align: right; margin-top: 20px; padding-top: 20px; border-top: 2px solid #A26D49; }
      .footer { text-align: center; padding: 20px; color: #666; font-size: 14px; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>🍰 Nuevo Pedido - Sabor de Emociones</h1>
      </div>
      <div class="content">
        <div class="section">
          <div class="section-title">Información del Cliente</div>
          <p><strong>Nombre:</strong> %s</p>
          <p><strong>Teléfono:</strong> %s</p>
          %s
        </div>
        <div class="section">
          <div class="section-title">Detalles de Entrega</div>
          <p><strong>Tipo:</strong> %s</p>
          %s%s%s
        </div>
        <div class="section">
          <div class="section-title">Productos</div>
          %s
        </div>
        <div class="total">
          Total estimado: $%.2f
        </div>
      </div>
      <div class="footer">
        <p>Gracias por elegir Sabor de Emociones 💛</p>
        <p>Este pedido fue enviado desde el sitio web</p>
      </div>
    </div>
  </body>
</html>`,
		esc(order.Name),
		esc(order.Phone),
		optional("Email", order.Email),
		modeLabel(order, false),
		optional("Dirección", order.Address),
		optional("Fecha deseada", order.DesiredDate),
		optional("Notas generales", order.GeneralNotes),
		items.String(),
		order.Total,
	)
}
