package formatters

import (
	"fmt"
	"github.com/lus/messageformat.go/support"
	"golang.org/x/text/currency"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"strings"
)

const numberSource = `function (value, lc, style) {
  var parts = String(style || "").split(":"), opt = {};
  switch (parts[0].trim()) {
    case "integer": opt.maximumFractionDigits = 0; break;
    case "percent": opt.style = "percent"; break;
    case "currency": opt.style = "currency"; opt.currency = (parts[1] || "USD").trim(); break;
  }
  return new Intl.NumberFormat(lc, opt).format(value);
}`

// Number formats a numeric value with the number conventions of the locale.
// Styles: "" (decimal), "integer", "percent" and "currency" or "currency:ISO" (USD by default).
func Number(value any, locale, style string) (string, error) {
	n, ok := support.ToNumber(value)
	if !ok {
		return "", fmt.Errorf("number formatter: non-numerical value %#v", value)
	}
	printer := message.NewPrinter(tag(locale))

	kind, code, _ := strings.Cut(style, ":")
	switch strings.TrimSpace(kind) {
	case "":
		return printer.Sprint(number.Decimal(n)), nil
	case "integer":
		return printer.Sprint(number.Decimal(n, number.MaxFractionDigits(0))), nil
	case "percent":
		return printer.Sprint(number.Percent(n)), nil
	case "currency":
		unit := currency.USD
		if code = strings.TrimSpace(code); code != "" {
			parsed, err := currency.ParseISO(code)
			if err != nil {
				return "", &StyleError{Formatter: "number", Style: style}
			}
			unit = parsed
		}
		return printer.Sprint(currency.Symbol(unit.Amount(n))), nil
	default:
		return "", &StyleError{Formatter: "number", Style: style}
	}
}
