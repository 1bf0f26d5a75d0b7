// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snapshot

import (
	"io"

	"github.com/bitmark-inc/bstree/fault"
)

// varint64MaximumBytes - maximum possible number of bytes in a varint64
const varint64MaximumBytes = 9

// toVarint64 - convert a 64 bit unsigned integer to varint64
//
// Structure of the result
// byte 1:  ext | B06 | B05 | B04 | B03 | B02 | B01 | B00
// byte 2:  ext | B13 | B12 | B11 | B10 | B09 | B08 | B07
// …
// byte 8:  ext | B55 | B54 | B53 | B52 | B51 | B50 | B49
// byte 9:  B63 | B62 | B61 | B60 | B59 | B58 | B57 | B56
func toVarint64(value uint64) []byte {
	result := make([]byte, 0, varint64MaximumBytes)
	for i := 1; i < varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value)|0x80)
		value >>= 7
	}
	return append(result, byte(value))
}

// fromVarint64 - convert the start of a buffer to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func fromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)
	for count := 0; count < len(buffer); {
		currentByte := uint64(buffer[count])
		count += 1
		if count == varint64MaximumBytes {
			return result | currentByte<<shift, count
		}
		result |= currentByte & 0x7f << shift
		if 0 == currentByte&0x80 {
			return result, count
		}
		shift += 7
	}
	return 0, 0
}

// read a varint64 from a stream
func readVarint64(r io.ByteReader) (uint64, error) {
	buffer := make([]byte, 0, varint64MaximumBytes)
	for len(buffer) < varint64MaximumBytes {
		b, err := r.ReadByte()
		if io.EOF == err {
			return 0, fault.NewKeyError(fault.ErrCorruptData, "truncated varint")
		} else if nil != err {
			return 0, err
		}
		buffer = append(buffer, b)
		if 0 == b&0x80 {
			break
		}
	}
	value, n := fromVarint64(buffer)
	if 0 == n {
		return 0, fault.NewKeyError(fault.ErrCorruptData, "truncated varint")
	}
	return value, nil
}

// signed values are zig-zag encoded so small negatives stay short
func zigzag(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

func unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
