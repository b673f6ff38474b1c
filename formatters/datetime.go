package formatters

import (
	"fmt"
	"github.com/klauspost/lctime"
	"github.com/lus/messageformat.go/support"
	"math"
	"strings"
	"sync"
	"time"
)

const dateSource = `function (value, lc, style) {
  var opt = { day: "numeric", month: "short", year: "numeric" };
  switch (style) {
    case "full": opt.weekday = "long";
    case "long": opt.month = "long"; break;
    case "short": opt.month = "numeric";
  }
  return new Date(value).toLocaleDateString(lc, opt);
}`

const timeSource = `function (value, lc, style) {
  var opt = { second: "numeric", minute: "numeric", hour: "numeric" };
  switch (style) {
    case "full": case "long": opt.timeZoneName = "short"; break;
    case "short": delete opt.second;
  }
  return new Date(value).toLocaleTimeString(lc, opt);
}`

// Layouts are strftime formats; month and weekday names come from the locale
var dateLayouts = map[string]string{
	"":        "%d %b %Y",
	"default": "%d %b %Y",
	"medium":  "%d %b %Y",
	"short":   "%x",
	"long":    "%d %B %Y",
	"full":    "%A %d %B %Y",
}

var timeLayouts = map[string]string{
	"":        "%X",
	"default": "%X",
	"medium":  "%X",
	"short":   "%H:%M",
	"long":    "%X %Z",
	"full":    "%X %Z",
}

// localizers caches one lctime localizer per requested locale code
var localizers sync.Map

// Date formats a point in time as a date in the conventions of the locale.
// Styles: "short", "default", "long" and "full".
func Date(value any, locale, style string) (string, error) {
	return formatTime("date", dateLayouts, value, locale, style)
}

// Time formats a point in time as a time of day in the conventions of the locale.
// Styles: "short", "default", "long" and "full".
func Time(value any, locale, style string) (string, error) {
	return formatTime("time", timeLayouts, value, locale, style)
}

func formatTime(formatter string, layouts map[string]string, value any, locale, style string) (string, error) {
	layout, ok := layouts[style]
	if !ok {
		return "", &StyleError{Formatter: formatter, Style: style}
	}
	t, err := toTime(value)
	if err != nil {
		return "", fmt.Errorf("%s formatter: %w", formatter, err)
	}
	loc, err := localizer(locale)
	if err != nil {
		return "", fmt.Errorf("%s formatter: %w", formatter, err)
	}
	return loc.Strftime(layout, t), nil
}

// localizer returns the time localizer of a locale code.
// Codes lctime does not know fall back to their likely region, their language and finally to en_US.
func localizer(locale string) (lctime.Localizer, error) {
	if cached, ok := localizers.Load(locale); ok {
		return cached.(lctime.Localizer), nil
	}

	var lastErr error
	for _, candidate := range localeCandidates(locale) {
		loc, err := lctime.NewLocalizer(candidate)
		if err != nil {
			lastErr = err
			continue
		}
		localizers.Store(locale, loc)
		return loc, nil
	}
	return nil, lastErr
}

// localeCandidates lists the lctime locale names to try for a locale code, most specific first
func localeCandidates(locale string) []string {
	candidates := []string{strings.ReplaceAll(locale, "-", "_")}
	parsed := tag(locale)
	base, _ := parsed.Base()
	if region, _ := parsed.Region(); region.String() != "ZZ" {
		candidates = append(candidates, base.String()+"_"+region.String())
	}
	return append(candidates, base.String(), "en_US")
}

// toTime accepts time values, RFC 3339 strings and numbers of milliseconds since the Unix epoch
func toTime(value any) (time.Time, error) {
	switch t := value.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t != nil {
			return *t, nil
		}
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed, nil
		}
	}
	if ms, ok := support.ToNumber(value); ok && !math.IsNaN(ms) && !math.IsInf(ms, 0) {
		return time.UnixMilli(int64(ms)).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("value %#v is no point in time", value)
}
