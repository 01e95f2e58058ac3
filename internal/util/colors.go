package util

import "github.com/fatih/color"

var colorsOptions = map[string]color.Attribute{
	"red":       color.FgHiRed,
	"green":     color.FgGreen,
	"underline": color.Underline,
	"bold":      color.Bold,
	"bgRed":     color.BgRed,
	"bgGreen":   color.BgGreen,
}

// DisableColor turns off escape sequences for the whole process.
func DisableColor() {
	color.NoColor = true
}

func ColorOutput(text string, colorOptions ...string) string {
	attributes := []color.Attribute{}
	for _, option := range colorOptions {
		if o, ok := colorsOptions[option]; ok {
			attributes = append(attributes, o)
		}
	}
	c := color.New(attributes...)
	return c.Sprint(text)
}

// ColorMoney formats value with the currency and paints negatives red and
// everything else green.
func ColorMoney(value int64, currency string) string {
	formatted := FormatMoney(value, currency)
	if value < 0 {
		return ColorOutput(formatted, "red", "underline")
	}
	return ColorOutput(formatted, "green", "bold")
}
