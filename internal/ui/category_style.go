package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/inboxsim/internal/domain"
)

// namedColors maps the CSS color names studies commonly use to terminal colors
var namedColors = map[string]lipgloss.Color{
	"black":   "0",
	"blue":    "21",
	"gray":    "244",
	"green":   "28",
	"grey":    "244",
	"orange":  "208",
	"purple":  "93",
	"red":     "196",
	"white":   "15",
	"yellow":  "226",
	"darkred": "88",
}

// categoryStyles are the terminal renditions of one category's CSS-like rules
type categoryStyles struct {
	body       lipgloss.Style
	header     lipgloss.Style
	headerIcon string
	sender     lipgloss.Style
	senderIcon string
}

const defaultSenderIcon = "●"

func defaultCategoryStyles() categoryStyles {
	return categoryStyles{
		body:       lipgloss.NewStyle(),
		header:     lipgloss.NewStyle().Bold(true),
		sender:     lipgloss.NewStyle(),
		senderIcon: defaultSenderIcon,
	}
}

// newCategoryStyles converts the rules of a category. Icons are shown only when their rule is set.
func newCategoryStyles(rules domain.CategoryStyle) categoryStyles {
	styles := categoryStyles{
		body:       parseCSS(rules.Body, lipgloss.NewStyle()),
		header:     parseCSS(rules.Header, lipgloss.NewStyle().Bold(true)),
		sender:     parseCSS(rules.Sender, lipgloss.NewStyle()),
		senderIcon: defaultSenderIcon,
	}
	if strings.TrimSpace(rules.HeaderIcon) != "" {
		styles.headerIcon = parseCSS(rules.HeaderIcon, lipgloss.NewStyle()).Render("▲")
	}
	if strings.TrimSpace(rules.SenderIcon) != "" {
		styles.senderIcon = parseCSS(rules.SenderIcon, lipgloss.NewStyle()).Render(defaultSenderIcon)
	}
	return styles
}

// parseCSS applies the declarations of a CSS-like rule string on top of base.
// Supported properties: color, background(-color), font-weight, font-style, text-decoration.
// Anything else is ignored.
func parseCSS(rule string, base lipgloss.Style) lipgloss.Style {
	style := base
	for _, decl := range strings.Split(rule, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.ToLower(strings.TrimSpace(value))
		value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))

		switch prop {
		case "color":
			if c, ok := parseColor(value); ok {
				style = style.Foreground(c)
			}
		case "background", "background-color":
			if c, ok := parseColor(value); ok {
				style = style.Background(c)
			}
		case "font-weight":
			style = style.Bold(isBold(value))
		case "font-style":
			style = style.Italic(value == "italic" || value == "oblique")
		case "text-decoration", "text-decoration-line":
			style = style.Underline(strings.Contains(value, "underline"))
			style = style.Strikethrough(strings.Contains(value, "line-through"))
		}
	}
	return style
}

// parseColor accepts #rgb, #rrggbb, rgb(r, g, b) and a small set of names
func parseColor(value string) (lipgloss.Color, bool) {
	switch {
	case strings.HasPrefix(value, "#") && len(value) == 4:
		r, g, b := value[1:2], value[2:3], value[3:4]
		return lipgloss.Color("#" + r + r + g + g + b + b), true
	case strings.HasPrefix(value, "#") && len(value) == 7:
		return lipgloss.Color(value), true
	case strings.HasPrefix(value, "rgb(") && strings.HasSuffix(value, ")"):
		parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(value, "rgb("), ")"), ",")
		if len(parts) != 3 {
			return "", false
		}
		var rgb [3]int
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 || n > 255 {
				return "", false
			}
			rgb[i] = n
		}
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])), true
	}
	c, ok := namedColors[value]
	return c, ok
}

func isBold(weight string) bool {
	if weight == "bold" || weight == "bolder" {
		return true
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n >= 600
}
