// Package patch applies RFC 7396 JSON Merge Patch documents to record-shaped
// values. Semantics: a null patch field clears the target field, a scalar
// replaces it, an object is merged recursively, an array replaces the whole
// target array, and absent fields are left untouched.
package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// ErrApplication indicates the merged document could not be deserialized back
// into the target shape. This is an internal, non-user-correctable condition.
var ErrApplication = errors.New("failed to apply merge patch")

// Apply merges patchJSON into target in place. The target is serialized to
// its canonical JSON form, structurally merged with the patch, and the result
// is deserialized back into a fresh value of the target's type. The target is
// only modified on success.
func Apply[T any](patchJSON []byte, target *T) error {
	original, err := json.Marshal(target)
	if err != nil {
		return fmt.Errorf("%w: marshal target: %s", ErrApplication, err)
	}

	merged, err := jsonpatch.MergePatch(original, patchJSON)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrApplication, err)
	}

	var out T
	dec := json.NewDecoder(bytes.NewReader(merged))
	if err := dec.Decode(&out); err != nil {
		return fmt.Errorf("%w: %s", ErrApplication, err)
	}

	*target = out
	return nil
}
