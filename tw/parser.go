package tw

import (
	"fmt"
	"strconv"
	"strings"
)

// Spacing is the pixel size of one spacing step (p-1, gap-1, w-1).
const Spacing = 4

// ParseClasses parses a Tailwind class string and returns computed styles
// Example: "w-auto max-w-[140px] px-3 py-2 text-right shrink-wrap"
func ParseClasses(classStr string) StyleProperties {
	var computed StyleProperties

	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)

		// State, theme and breakpoint variants don't affect measurement.
		if len(parsed.Variants) > 0 {
			continue
		}

		var partial StyleProperties
		if parsed.ArbitraryValue != nil {
			partial = parseArbitraryValue(parsed.ArbitraryValue)
		} else {
			var ok bool
			partial, ok = lookupClass(parsed.BaseClass)
			if !ok {
				// Unknown class, silently ignore (like Tailwind CSS)
				continue
			}
		}
		computed.Merge(partial)
	}

	return computed
}

// parseClass splits a class into variant modifiers and base utility
// "hover:px-4" → ParsedClass{Variants: ["hover"], BaseClass: "px-4"}
// "w-[140px]" → ParsedClass{ArbitraryValue: {Property: "w", Value: "140px"}}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")
	pc := ParsedClass{
		Variants:  parts[:len(parts)-1],
		BaseClass: parts[len(parts)-1],
	}

	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}
	return pc
}

// extractArbitraryValue parses arbitrary value syntax
// "max-w-[140px]" → ArbitraryValue{Property: "max-w", Value: "140px"}
func extractArbitraryValue(class string) *ArbitraryValue {
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	return &ArbitraryValue{
		Property: strings.TrimSuffix(class[:bracketIdx], "-"),
		Value:    strings.TrimSuffix(class[bracketIdx+1:], "]"),
	}
}

// parseArbitraryValue converts arbitrary value to StyleProperties at runtime
func parseArbitraryValue(arb *ArbitraryValue) StyleProperties {
	var partial StyleProperties

	if arb.Property == "line-clamp" {
		if n, err := strconv.Atoi(arb.Value); err == nil && n >= 0 {
			partial.LineClamp = &n
		}
		return partial
	}

	val := parseDimension(arb.Value)
	if val == nil {
		return partial
	}
	applyDimension(&partial, arb.Property, val)
	return partial
}

// applyDimension sets the property named by a utility prefix.
// Returns false for prefixes that don't take a dimension.
func applyDimension(p *StyleProperties, property string, val *float32) bool {
	switch property {
	case "w":
		p.Width = val
		p.WidthMode = strPtr("fixed")
	case "min-w":
		p.MinWidth = val
	case "max-w":
		p.MaxWidth = val
	case "p":
		p.PaddingTop, p.PaddingRight, p.PaddingBottom, p.PaddingLeft = val, val, val, val
	case "px":
		p.PaddingLeft, p.PaddingRight = val, val
	case "py":
		p.PaddingTop, p.PaddingBottom = val, val
	case "pt":
		p.PaddingTop = val
	case "pr":
		p.PaddingRight = val
	case "pb":
		p.PaddingBottom = val
	case "pl":
		p.PaddingLeft = val
	case "gap":
		p.Gap = val
	default:
		return false
	}
	return true
}

// parseDimension parses "140px", "1.5rem" or a bare number as pixels.
func parseDimension(value string) *float32 {
	value = strings.TrimSpace(value)

	var numStr string
	var multiplier float32 = 1.0

	switch {
	case strings.HasSuffix(value, "px"):
		numStr = strings.TrimSuffix(value, "px")
	case strings.HasSuffix(value, "rem"):
		numStr = strings.TrimSuffix(value, "rem")
		multiplier = 16.0 // Convert rem to pixels (1rem = 16px)
	case strings.HasSuffix(value, "em"):
		numStr = strings.TrimSuffix(value, "em")
		multiplier = 16.0 // Convert em to pixels (approximate)
	case strings.HasSuffix(value, "%"):
		// Percentages need a containing block; not supported for measurement.
		return nil
	default:
		numStr = value
	}

	var num float32
	if _, err := fmt.Sscanf(numStr, "%f", &num); err == nil {
		result := num * multiplier
		return &result
	}
	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(n int) *int       { return &n }
