package i18n

var sv = map[string]string{
	"cart":                  "Varukorg",
	"cart_empty":            "Din varukorg är tom",
	"cart_empty_text":       "Besök en nod för att hitta tillgängliga produkter",
	"error_updating_cart":   "Kunde inte uppdatera varukorgen.",
	"failed_loading_cart":   "Kunde inte ladda varukorgen.",
	"failed_creating_order": "Kunde inte skicka beställningen.",
	"order":                 "Beställning",
	"order_created":         "Din beställning är skapad",
	"order_summary":         "{count} varor hos {node_name}, upphämtning {date}",
	"orders":                "Beställningar",
	"pickup":                "Upphämtning",
	"pickup_date_unknown":   "Upphämtningsdatum saknas",
	"pickup_on":             "Upphämtning den",
	"price":                 "Pris",
	"producer":              "Producent",
	"product":               "Produkt",
	"quantity":              "Antal",
	"remove":                "Ta bort",
	"send_order":            "Beställ",
	"try_again":             "Försök igen",
	"user_not_loggedin":     "Logga in för att beställa produkter",

	"info":    "Info",
	"warn":    "Varning",
	"error":   "Fel",
	"success": "Klart",

	"January":   "januari",
	"February":  "februari",
	"March":     "mars",
	"April":     "april",
	"May":       "maj",
	"June":      "juni",
	"July":      "juli",
	"August":    "augusti",
	"September": "september",
	"October":   "oktober",
	"November":  "november",
	"December":  "december",

	"notification_upcoming_delivery_title":   "Kommande leverans",
	"notification_upcoming_delivery_message": "{node_name} har en leverans den {date}",
}
