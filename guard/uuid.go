package guard

import (
	"github.com/amp-labs/amp-guard/errors"
	"github.com/google/uuid"
)

// NotEmptyUUID fails if id is the nil UUID.
func NotEmptyUUID(id uuid.UUID, opts ...Option) error {
	if !Enabled() || id != uuid.Nil {
		return nil
	}

	return fail("NotEmptyUUID", errors.ErrEmptyUUID, id, opts, describe("must not be the nil UUID"))
}
