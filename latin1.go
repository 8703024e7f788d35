// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrgen

import (
	"errors"

	"golang.org/x/text/encoding/charmap"
)

// ErrLatin1 reports text with characters outside ISO 8859-1.
var ErrLatin1 = errors.New("qr: text not representable in latin-1")

// toLatin1 transcodes UTF-8 text to ISO 8859-1 for byte mode
// encoding.  The character count of the resulting segment is its
// length in Latin-1 bytes.
func toLatin1(s string) (string, error) {
	t, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return "", ErrLatin1
	}
	return t, nil
}
