package tw

import (
	"strconv"
	"strings"
)

// ClassMap holds the keyword utilities. Scale utilities such as px-3 or
// gap-2 are resolved by lookupClass.
var ClassMap = map[string]StyleProperties{
	"w-auto": {WidthMode: strPtr("auto")},
	"w-fit":  {WidthMode: strPtr("auto")},
	"w-full": {WidthMode: strPtr("full")},

	"hidden": {Display: strPtr("none")},
	"flex":   {Display: strPtr("flex")},

	"flex-row": {FlexDirection: strPtr("row")},
	"flex-col": {FlexDirection: strPtr("column")},

	"items-start":  {AlignItems: strPtr("start")},
	"items-center": {AlignItems: strPtr("center")},
	"items-end":    {AlignItems: strPtr("end")},

	"text-left":   {TextAlign: strPtr("left")},
	"text-center": {TextAlign: strPtr("center")},
	"text-right":  {TextAlign: strPtr("right")},
	"text-start":  {TextAlign: strPtr("left")},
	"text-end":    {TextAlign: strPtr("right")},

	"truncate":        {Truncate: boolPtr(true), LineClamp: intPtr(1)},
	"line-clamp-none": {LineClamp: intPtr(0)},

	"shrink-wrap":      {ShrinkWrap: boolPtr(true)},
	"shrink-wrap-none": {ShrinkWrap: boolPtr(false)},
}

// lookupClass resolves a keyword utility or a spacing-scale utility.
func lookupClass(class string) (StyleProperties, bool) {
	if p, ok := ClassMap[class]; ok {
		return p, true
	}

	idx := strings.LastIndex(class, "-")
	if idx <= 0 {
		return StyleProperties{}, false
	}
	prefix, step := class[:idx], class[idx+1:]

	n, err := strconv.ParseFloat(step, 32)
	if err != nil || n < 0 {
		return StyleProperties{}, false
	}

	var p StyleProperties
	if prefix == "line-clamp" {
		lines := int(n)
		p.LineClamp = &lines
		return p, true
	}

	px := float32(n) * Spacing
	if !applyDimension(&p, prefix, &px) {
		return StyleProperties{}, false
	}
	return p, true
}
