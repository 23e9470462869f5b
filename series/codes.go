package series

// IconCategory groups weather codes by the icon a client should draw.
type IconCategory int

const (
	IconClear IconCategory = iota
	IconPartlyCloudy
	IconCloud
	IconFog
	IconDrizzle
	IconRain
	IconSnow
	IconRainShowers
	IconThunderstorm
)

var iconNames = [...]string{
	IconClear:        "clear",
	IconPartlyCloudy: "partly-cloudy",
	IconCloud:        "cloud",
	IconFog:          "fog",
	IconDrizzle:      "drizzle",
	IconRain:         "rain",
	IconSnow:         "snow",
	IconRainShowers:  "rain-showers",
	IconThunderstorm: "thunderstorm",
}

// String returns the icon class name.
func (i IconCategory) String() string {
	if i < 0 || int(i) >= len(iconNames) {
		return iconNames[IconClear]
	}
	return iconNames[i]
}

func (i IconCategory) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// CodeInfo describes one entry of the WMO weather interpretation table.
type CodeInfo struct {
	Description string
	Icon        IconCategory
}

const unknownDescription = "Unknown"

var codes = map[int]CodeInfo{
	0:  {"Clear sky", IconClear},
	1:  {"Mainly clear", IconPartlyCloudy},
	2:  {"Partly cloudy", IconPartlyCloudy},
	3:  {"Overcast", IconPartlyCloudy},
	45: {"Fog", IconFog},
	48: {"Depositing rime fog", IconFog},
	51: {"Light drizzle", IconDrizzle},
	53: {"Moderate drizzle", IconDrizzle},
	55: {"Dense drizzle", IconDrizzle},
	61: {"Slight rain", IconRain},
	63: {"Moderate rain", IconRain},
	65: {"Heavy rain", IconRain},
	71: {"Slight snow", IconSnow},
	73: {"Moderate snow", IconSnow},
	75: {"Heavy snow", IconSnow},
	80: {"Slight rain showers", IconRainShowers},
	81: {"Moderate rain showers", IconRainShowers},
	82: {"Violent rain showers", IconRainShowers},
	95: {"Thunderstorm", IconThunderstorm},
	96: {"Thunderstorm with hail", IconThunderstorm},
	99: {"Thunderstorm with heavy hail", IconThunderstorm},
}

// Lookup returns the table entry for code.
func Lookup(code int) (CodeInfo, bool) {
	info, ok := codes[code]
	return info, ok
}

// Describe returns the human readable description of code, or "Unknown".
func Describe(code int) string {
	if info, ok := codes[code]; ok {
		return info.Description
	}
	return unknownDescription
}

// IconFor picks the icon for code. Codes 1-3 draw a plain cloud at night;
// every other code ignores isDay. Unmapped codes fall back to IconClear.
func IconFor(code int, isDay bool) IconCategory {
	info, ok := codes[code]
	if !ok {
		return IconClear
	}

	if code >= 1 && code <= 3 && !isDay {
		return IconCloud
	}

	return info.Icon
}
