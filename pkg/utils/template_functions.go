package utils

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"animated-nav/pkg/navigation"
)

type AssetModTimeFunc func(path string) (time.Time, error)

func GetTemplateFuncs(assetModTime AssetModTimeFunc) template.FuncMap {
	return template.FuncMap{
		// charDelay yields the inline custom property consumed by the stylesheet.
		"charDelay": func(letter navigation.Letter) template.CSS {
			return template.CSS("--char-delay: " + letter.CSSDelay())
		},

		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("dict expects an even number of arguments")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict key %v is not a string", values[i])
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},

		"asset": func(path string) string {
			if path == "" {
				return ""
			}
			lowerPath := strings.ToLower(path)
			if strings.HasPrefix(lowerPath, "http://") || strings.HasPrefix(lowerPath, "https://") || strings.HasPrefix(path, "//") {
				return path
			}
			if assetModTime == nil {
				return path
			}
			modTime, err := assetModTime(path)
			if err != nil || modTime.IsZero() {
				return path
			}
			separator := "?"
			if strings.Contains(path, "?") {
				separator = "&"
			}
			return fmt.Sprintf("%s%sv=%d", path, separator, modTime.Unix())
		},
	}
}
