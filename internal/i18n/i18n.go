// Package i18n holds the label tables used by the CLI and the export
// layouts. Spanish is the default; English exists for the odd export sent to
// a cross-border client.
package i18n

import "strings"

const DefaultLang = "es"

var translations = map[string]map[string]string{
	"es": {
		"quotation":      "Cotización",
		"folio":          "Folio",
		"date":           "Fecha",
		"client":         "Cliente",
		"phone":          "Teléfono",
		"address":        "Dirección",
		"item":           "Artículo",
		"category":       "Categoría",
		"dimensions":     "Medidas",
		"material":       "Material",
		"color":          "Color",
		"finish":         "Acabado",
		"quantity":       "Cant.",
		"unit_price":     "P. Unitario",
		"line_subtotal":  "Importe",
		"subtotal":       "Subtotal",
		"discount":       "Descuento",
		"total":          "Total",
		"advance":        "Anticipo",
		"delivery":       "Entrega",
		"payment_method": "Forma de pago",
		"observations":   "Observaciones",
		"status":         "Estatus",
		"footer_thanks":  "Gracias por su preferencia",
		"status_draft":    "Borrador",
		"status_sent":     "Enviada",
		"status_accepted": "Aceptada",
		"status_rejected": "Rechazada",
	},
	"en": {
		"quotation":      "Quotation",
		"folio":          "Folio",
		"date":           "Date",
		"client":         "Client",
		"phone":          "Phone",
		"address":        "Address",
		"item":           "Item",
		"category":       "Category",
		"dimensions":     "Dimensions",
		"material":       "Material",
		"color":          "Color",
		"finish":         "Finish",
		"quantity":       "Qty",
		"unit_price":     "Unit price",
		"line_subtotal":  "Amount",
		"subtotal":       "Subtotal",
		"discount":       "Discount",
		"total":          "Total",
		"advance":        "Advance",
		"delivery":       "Delivery",
		"payment_method": "Payment method",
		"observations":   "Notes",
		"status":         "Status",
		"footer_thanks":  "Thank you for your business",
		"status_draft":    "Draft",
		"status_sent":     "Sent",
		"status_accepted": "Accepted",
		"status_rejected": "Rejected",
	},
}

// DetectLanguage picks a supported language from an Accept-Language style
// string, defaulting to Spanish.
func DetectLanguage(header string) string {
	h := strings.ToLower(header)
	if strings.HasPrefix(h, "en") {
		return "en"
	}
	return DefaultLang
}

// T translates a label code; unknown codes fall back to the code itself.
func T(lang, code string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[DefaultLang]
	}
	if s, ok := table[code]; ok {
		return s
	}
	if lang != DefaultLang {
		if s, ok := translations[DefaultLang][code]; ok {
			return s
		}
	}
	return code
}
