// Package format contiene los formateadores de presentación del inventario.
// Son funciones puras sobre un único valor: nunca entran en pánico y los
// valores ausentes se renderizan como cadena vacía, no como cero.
package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol símbolo fijo con el que se renderiza el precio unitario.
const CurrencySymbol = "£"

// ISODate layout de fecha con el que llegan las fechas de vencimiento del proveedor.
const ISODate = "2006-01-02"

// displayDate layout día/mes/año con dos dígitos para la tabla.
const displayDate = "02/01/2006"

var printer = message.NewPrinter(language.BritishEnglish)

// Quantity formatea una cantidad con separador de miles y sin decimales.
// Quantity(3500) == "3,500".
func Quantity(q int64) string {
	return printer.Sprintf("%v", number.Decimal(q))
}

// UnitPrice formatea un precio unitario con símbolo fijo y exactamente dos
// decimales: UnitPrice(1.5) == "£1.50", UnitPrice(5000) == "£5,000.00".
// Un precio ausente (nil) se renderiza vacío.
func UnitPrice(p *decimal.Decimal) string {
	if p == nil {
		return ""
	}
	v := number.Decimal(p.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)
	return printer.Sprintf("%s%v", CurrencySymbol, v)
}

// ExpiryDate re-formatea una fecha ISO (yyyy-mm-dd) como dd/mm/yyyy.
// ExpiryDate("2035-09-14") == "14/09/2035". Vacía o no parseable -> "".
func ExpiryDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(ISODate, iso)
	if err != nil {
		return ""
	}
	return t.Format(displayDate)
}
