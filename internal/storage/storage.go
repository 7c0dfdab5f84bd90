// internal/storage/storage.go
package storage

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProofStorage stores uploaded payment-proof images and hands back both the
// stored filename and the URL a browser can fetch it from.
type ProofStorage interface {
	Save(originalName string, r io.Reader) (storedName, publicURL string, err error)
}

// uniqueName builds "<unix-millis>-<random><ext>" so concurrent uploads of
// files with the same original name never collide.
func uniqueName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
