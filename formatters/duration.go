package formatters

import (
	"fmt"
	"github.com/lus/messageformat.go/support"
	"math"
	"strconv"
)

const durationSource = `function (value) {
  if (!isFinite(value)) return String(value);
  var sign = value < 0 ? "-" : "", total = Math.abs(value);
  var sec = total % 60, min = Math.floor(total / 60) % 60, hours = Math.floor(total / 3600);
  var secText = Math.round(sec) === sec ? String(sec) : sec.toFixed(3);
  if (sec < 10) secText = "0" + secText;
  if (hours > 0) return sign + hours + ":" + (min < 10 ? "0" : "") + min + ":" + secText;
  return sign + min + ":" + secText;
}`

// Duration is no built-in; it is registered like any custom formatter.
// It formats a number of seconds as [-]h:mm:ss or [-]m:ss with millisecond precision.
var Duration = Formatter{Func: formatDuration, Source: durationSource}

func formatDuration(value any, locale, style string) (string, error) {
	n, ok := support.ToNumber(value)
	if !ok {
		return "", fmt.Errorf("duration formatter: non-numerical value %#v", value)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	}

	sign := ""
	if n < 0 {
		sign = "-"
	}
	total := math.Abs(n)
	sec := math.Mod(total, 60)
	minutes := int64(total/60) % 60
	hours := int64(total / 3600)

	secText := strconv.FormatFloat(sec, 'f', 3, 64)
	if sec == math.Trunc(sec) {
		secText = strconv.FormatFloat(sec, 'f', 0, 64)
	}
	if sec < 10 {
		secText = "0" + secText
	}

	if hours > 0 {
		return fmt.Sprintf("%s%d:%02d:%s", sign, hours, minutes, secText), nil
	}
	return fmt.Sprintf("%s%d:%s", sign, minutes, secText), nil
}
