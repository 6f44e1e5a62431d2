// Package idgenerator builds sortable unique ids: an optional prefix, the
// unix millisecond timestamp and a raw base64url uuid.
package idgenerator

//go:generate mockgen -source=idgenerator.go -destination=mock/idgenerator.go -package=mock

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type generator struct {
	now     func() time.Time
	newUUID func() uuid.UUID
}

func New() Generator {
	return &generator{now: time.Now, newUUID: uuid.New}
}

// Generate joins non-empty prefixes with "-" and appends a unique suffix,
// e.g. PAY-1718000000000hV8xq2N5R0S0a8bPqJ7y3w.
func (g *generator) Generate(prefixes ...string) string {
	id := g.newUUID()

	var sb strings.Builder
	if prefix := strings.Join(prefixes, "-"); prefix != "" {
		sb.WriteString(prefix)
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.FormatInt(g.now().UnixMilli(), 10))
	sb.WriteString(base64.RawURLEncoding.EncodeToString(id[:]))

	return sb.String()
}
