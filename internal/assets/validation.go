package assets

import (
	"fmt"
	"strings"

	"github.com/alnah/go-docxgen/internal/fileutil"
)

// ValidateAssetName checks that a report name can be looked up safely. On top
// of fileutil.ValidateBaseName it rejects dots, so a name never carries its
// own extension and never climbs out of the reports directory.
func ValidateAssetName(name string) error {
	if err := fileutil.ValidateBaseName(name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAssetName, err)
	}
	if strings.Contains(name, ".") {
		return fmt.Errorf("%w: %q contains a dot", ErrInvalidAssetName, name)
	}
	return nil
}
