package render

import (
	"strings"
)

// IconRule binds a lowercase condition key to an icon.
type IconRule struct {
	Key  string
	Icon IconBlock
}

// Catalog resolves condition phrases to icons. The first key contained in a
// phrase wins, in declaration order, so rules must run from most to least
// specific.
type Catalog struct {
	rules   []IconRule
	unknown IconBlock
}

// NewCatalog builds a catalog from ordered rules and a fallback icon.
func NewCatalog(unknown IconBlock, rules ...IconRule) *Catalog {
	return &Catalog{
		rules:   append([]IconRule(nil), rules...),
		unknown: unknown,
	}
}

// DefaultCatalog returns the catalog covering the wttr.in condition phrases.
func DefaultCatalog() *Catalog {
	var (
		thunderyShowers = thunderyShowersIcon()
		lightShowers    = lightShowersIcon()
		heavyShowers    = heavyShowersIcon()
		lightRain       = lightRainIcon()
		heavyRain       = heavyRainIcon()
		lightSnow       = lightSnowIcon()
		heavySnow       = heavySnowIcon()
		lightSnowShower = lightSnowShowersIcon()
		lightSleet      = lightSleetIcon()
		fog             = fogIcon()
		sunny           = sunnyIcon()
	)

	return NewCatalog(unknownIcon(),
		IconRule{"thundery heavy rain", thunderyHeavyRainIcon()},
		IconRule{"thundery snow showers", thunderySnowShowersIcon()},
		IconRule{"thundery showers", thunderyShowers},
		IconRule{"thundery outbreaks", thunderyShowers},
		IconRule{"thunder", thunderyShowers},

		IconRule{"freezing fog", fog},

		IconRule{"blizzard", heavySnow},
		IconRule{"heavy snow showers", heavySnowShowersIcon()},
		IconRule{"heavy snow", heavySnow},
		IconRule{"light snow showers", lightSnowShower},
		IconRule{"patchy snow", lightSnowShower},
		IconRule{"light snow", lightSnow},
		IconRule{"blowing snow", heavySnow},
		IconRule{"snow", lightSnow},

		IconRule{"light sleet showers", lightSleetShowersIcon()},
		IconRule{"light sleet", lightSleet},
		IconRule{"sleet", lightSleet},
		IconRule{"ice pellets", lightSleet},
		IconRule{"freezing", lightSleet},

		IconRule{"heavy rain", heavyRain},
		IconRule{"torrential", heavyShowers},
		IconRule{"heavy showers", heavyShowers},
		IconRule{"moderate rain", heavyRain},

		IconRule{"light rain shower", lightShowers},
		IconRule{"patchy rain", lightShowers},
		IconRule{"light showers", lightShowers},
		IconRule{"light rain", lightRain},
		IconRule{"light drizzle", lightRain},
		IconRule{"drizzle", lightRain},
		IconRule{"showers", lightShowers},
		IconRule{"shower", lightShowers},
		IconRule{"rain", lightRain},

		IconRule{"fog", fog},
		IconRule{"mist", fog},
		IconRule{"haze", fog},

		IconRule{"overcast", overcastIcon()},
		IconRule{"partly cloudy", partlyCloudyIcon()},
		IconRule{"cloudy", cloudyIcon()},
		IconRule{"sunny", sunny},
		IconRule{"clear", sunny},
	)
}

// Match returns the first key contained in phrase; ok is false when the
// fallback applies.
func (c *Catalog) Match(phrase string) (key string, icon IconBlock, ok bool) {
	p := normalize(phrase)
	if p == "" {
		return "", c.unknown, false
	}
	for _, r := range c.rules {
		if strings.Contains(p, r.Key) {
			return r.Key, r.Icon, true
		}
	}
	return "", c.unknown, false
}

// Lookup returns the icon for phrase, or the unknown icon.
func (c *Catalog) Lookup(phrase string) IconBlock {
	_, icon, _ := c.Match(phrase)
	return icon
}

// Keys lists the rule keys in match order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.rules))
	for i, r := range c.rules {
		keys[i] = r.Key
	}
	return keys
}

// Thundery reports whether phrase describes thunder.
func Thundery(phrase string) bool {
	return strings.Contains(normalize(phrase), "thunder")
}

func normalize(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}
