package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// namedColors 支持的颜色名称
var namedColors = map[string]color.NRGBA{
	"white": {R: 255, G: 255, B: 255, A: 255},
	"black": {R: 0, G: 0, B: 0, A: 255},
	"red":   {R: 255, G: 0, B: 0, A: 255},
}

// ParseColor 解析颜色字符串
//
// 支持格式：
//   - "#rgb"
//   - "#rrggbb"
//   - "#rrggbbaa"
//   - 颜色名称（white, black, red）
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: must start with '#'", s)
	}
	hex := s[1:]

	// "#rgb" 展开为 "#rrggbb"
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: expected 3, 6 or 8 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustParseColor 解析颜色（非预乘 alpha），失败时返回不透明白色
// 仅用于已通过 Validate 的配置
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		return namedColors["white"]
	}
	return c
}
