// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides deterministic CBOR encoding for verification
// reports.
//
// Reports from separate runs of the same binary are compared byte for
// byte, so the encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical report, same bytes.
package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the deterministic CBOR encoder shared by all callers.
var encMode cbor.EncMode

// decMode accepts standard CBOR and ignores unknown fields, so old
// tools can read reports written by newer ones.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Reports only ever use string map keys. When decoding into an
		// any-typed target, produce map[string]any rather than the CBOR
		// default map[any]any, which most Go code cannot consume.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for
// data. Used by "minboot-verify show-report --raw" to dump a report
// without interpreting it.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
