package cart

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"
)

// lineIDBytes is how much of the SHA-256 digest is kept in a line ID.
const lineIDBytes = 16

// DeriveLineID returns the identity of a product configuration. Selections
// that differ only in add-on order, duplicate add-ons, or surrounding
// whitespace in the note map to the same ID.
func DeriveLineID(productID, variationID string, addOnIDs []string, note string) string {
	h := sha256.New()
	writeField(h, productID)
	writeField(h, variationID)

	ids := NormalizeAddOnIDs(addOnIDs)
	writeField(h, strconv.Itoa(len(ids)))
	for _, id := range ids {
		writeField(h, id)
	}

	writeField(h, NormalizeNote(note))

	return hex.EncodeToString(h.Sum(nil)[:lineIDBytes])
}

// NormalizeAddOnIDs returns a sorted copy of ids without duplicates or blanks.
func NormalizeAddOnIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			out = append(out, id)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// NormalizeNote trims surrounding whitespace from free-text instructions.
func NormalizeNote(note string) string {
	return strings.TrimSpace(note)
}

// writeField length-prefixes s so that field boundaries cannot be forged.
func writeField(h interface{ Write([]byte) (int, error) }, s string) {
	_, _ = h.Write([]byte(strconv.Itoa(len(s))))
	_, _ = h.Write([]byte{':'})
	_, _ = h.Write([]byte(s))
	_, _ = h.Write([]byte{';'})
}
