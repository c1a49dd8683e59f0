package component

import (
	"fmt"
	"strings"

	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// ParseMagicTypeType parses line, bar or stack.
func ParseMagicTypeType(s string) (MagicTypeType, error) {
	switch t := MagicTypeType(strings.ToLower(strings.TrimSpace(s))); t {
	case MagicTypeTypeLine, MagicTypeTypeBar, MagicTypeTypeStack:
		return t, nil
	}
	return "", fmt.Errorf("%w: magic type %q", element.ErrUnknownVariant, s)
}

// SaveAsImageType returns the image format configured on the save-as-image
// tool, and false when the toolbox has no such tool or no explicit format.
func (t *Toolbox) SaveAsImageType() (SaveAsImageType, bool) {
	if t == nil || t.Feature == nil || t.Feature.SaveAsImage == nil || t.Feature.SaveAsImage.Type == "" {
		return "", false
	}
	return t.Feature.SaveAsImage.Type, true
}
