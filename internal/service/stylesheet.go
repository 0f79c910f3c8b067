package service

import "strings"

// ContainerStyle is the inline style of the page's wrapping element.
const ContainerStyle = "text-align: center; padding: 50px;"

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule maps a selector to its declarations, in order.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// StyleSheet is an ordered list of rules.
type StyleSheet []Rule

// DefaultStyleSheet returns the page's rules.
func DefaultStyleSheet() StyleSheet {
	return StyleSheet{
		{
			Selector: "h1",
			Declarations: []Declaration{
				{Property: "color", Value: "#dd0031"},
			},
		},
		{
			Selector: "p",
			Declarations: []Declaration{
				{Property: "font-size", Value: "18px"},
				{Property: "color", Value: "#333"},
			},
		},
	}
}

// Lookup returns the value declared for property under selector.
func (s StyleSheet) Lookup(selector, property string) (string, bool) {
	for _, rule := range s {
		if rule.Selector != selector {
			continue
		}
		for _, decl := range rule.Declarations {
			if decl.Property == property {
				return decl.Value, true
			}
		}
	}
	return "", false
}

// CSS serializes the sheet. Output is stable for a given sheet.
func (s StyleSheet) CSS() string {
	var b strings.Builder
	for i, rule := range s {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(rule.Selector)
		b.WriteString(" {\n")
		for _, decl := range rule.Declarations {
			b.WriteString("  ")
			b.WriteString(decl.Property)
			b.WriteString(": ")
			b.WriteString(decl.Value)
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}
