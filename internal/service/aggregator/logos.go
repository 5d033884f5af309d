package aggregator

import "strings"

// DefaultLogo используется, когда тег исходной базы не находится в таблице.
const DefaultLogo = "https://i.ibb.co/ZJLQJmb/selfmade-black.jpg"

// LogoTable точное сопоставление тега исходной базы (в нижнем регистре)
// ссылке на логотип.
type LogoTable struct {
	byTag    map[string]string
	fallback string
}

func NewLogoTable(entries map[string]string, fallback string) LogoTable {
	if fallback == "" {
		fallback = DefaultLogo
	}

	byTag := make(map[string]string, len(entries))
	for tag, logo := range entries {
		if logo == "" {
			continue
		}
		byTag[strings.ToLower(tag)] = logo
	}

	return LogoTable{
		byTag:    byTag,
		fallback: fallback,
	}
}

func (t LogoTable) For(tag string) string {
	if logo, ok := t.byTag[strings.ToLower(tag)]; ok {
		return logo
	}
	return t.fallback
}
