package model

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates the short prefixed ids used for orders ("ORD-…"),
// profiles ("USR-…") and addresses ("ADDR-…").
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(raw[:9])
}
