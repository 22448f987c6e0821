package installer

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrInvalidJSON is returned by MergeJSON when either document is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON document")

// MergeJSON adds the keys of incoming that existing lacks and returns the
// merged document.
//
// Values already present in existing always win. When both sides hold an
// object under the same key the objects are merged the same way, so a new
// nested setting reaches a user's file without clobbering their edits.
// Arrays and scalars are never combined.
func MergeJSON(existing, incoming []byte) ([]byte, error) {
	if !gjson.ValidBytes(existing) || !gjson.ValidBytes(incoming) {
		return nil, ErrInvalidJSON
	}

	dst := gjson.ParseBytes(existing)
	src := gjson.ParseBytes(incoming)
	if !dst.IsObject() || !src.IsObject() {
		return existing, nil
	}

	out := append([]byte(nil), existing...)
	return mergeObject(out, "", src)
}

func mergeObject(out []byte, prefix string, src gjson.Result) ([]byte, error) {
	var err error
	src.ForEach(func(key, value gjson.Result) bool {
		p := escapeKey(key.String())
		if prefix != "" {
			p = prefix + "." + p
		}

		cur := gjson.GetBytes(out, p)
		switch {
		case !cur.Exists():
			out, err = sjson.SetRawBytes(out, p, []byte(value.Raw))
		case cur.IsObject() && value.IsObject():
			out, err = mergeObject(out, p, value)
		}
		return err == nil
	})
	return out, err
}

// escapeKey makes a literal object key safe to use as a gjson/sjson path
// component.
func escapeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@', '!', '=', '<', '>', '%', ':':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
