package models

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"regexp"

	"github.com/google/uuid"
)

// ItemIDPattern matches every generated item ID.
var ItemIDPattern = regexp.MustCompile(`^CCD-\d{6}-\d{6}$`)

// NewItemID generates an opaque item ID of the form CCD-######-######.
// IDs are assigned once at creation and never change; uniqueness is enforced
// by the document store's primary key.
func NewItemID() string {
	return fmt.Sprintf("CCD-%06d-%06d", rand.IntN(1000000), rand.IntN(1000000))
}

// NewEtag generates a fresh opaque etag. Regenerated on every persist so
// clients can detect concurrent modification.
func NewEtag() string {
	sum := sha1.Sum([]byte(uuid.NewString()))
	return hex.EncodeToString(sum[:])
}
