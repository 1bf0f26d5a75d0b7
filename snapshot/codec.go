// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snapshot

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

type tagType byte

// record types in a snapshot
const (
	taggedBOF        tagType = iota
	taggedEOF        tagType = iota
	taggedAbsent     tagType = iota
	taggedNode       tagType = iota
	taggedKeyedNode  tagType = iota
	taggedNil        tagType = iota
	taggedString     tagType = iota
	taggedInteger    tagType = iota
	taggedBoolean    tagType = iota
	taggedBytes      tagType = iota
	taggedStringKey  tagType = iota
	taggedIntegerKey tagType = iota
)

// the BOF tag to check file version
// exact match is required
var bofData = []byte("bst-snapshot v1.0")

// largest record accepted when decoding
const maximumRecordLength = 1 << 24

// Encode - write an exported tree
//
// values may be nil, string, int, int64, bool, []byte, bst.String or
// bst.Integer; keys must be bst.String or bst.Integer.  An int value
// is decoded as int64.
func Encode(w io.Writer, data []interface{}) error {
	bw := bufio.NewWriter(w)

	err := writeRecord(bw, taggedBOF, bofData)
	if nil != err {
		return err
	}

	stack := []interface{}{data}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		record, ok := item.([]interface{})
		if !ok {
			return fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("node is %T", item))
		}

		switch len(record) {
		case 0:
			err = writeRecord(bw, taggedAbsent, nil)
		case 3:
			err = writeRecord(bw, taggedNode, nil)
			if nil == err {
				err = writeScalar(bw, record[2])
			}
		case 4:
			err = writeRecord(bw, taggedKeyedNode, nil)
			if nil == err {
				err = writeScalar(bw, record[2])
			}
			if nil == err {
				err = writeKey(bw, record[3])
			}
		default:
			return fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("node length %d", len(record)))
		}
		if nil != err {
			return err
		}
		if len(record) > 0 {
			stack = append(stack, record[1], record[0])
		}
	}

	err = writeRecord(bw, taggedEOF, []byte("EOF"))
	if nil != err {
		return err
	}
	return bw.Flush()
}

// Decode - read an exported tree written by Encode
func Decode(r io.Reader) ([]interface{}, error) {
	br := bufio.NewReader(r)

	// must have BOF record first
	tag, packed, err := readRecord(br)
	if nil != err {
		return nil, err
	}
	if taggedBOF != tag {
		return nil, fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("expected BOF: %d but read: %d", taggedBOF, tag))
	}
	if !bytes.Equal(bofData, packed) {
		return nil, fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("expected BOF: %q but read: %q", bofData, packed))
	}

	var result interface{}
	stack := []*interface{}{&result}

	for len(stack) > 0 {
		dest := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tag, _, err := readRecord(br)
		if nil != err {
			return nil, err
		}

		switch tag {
		case taggedAbsent:
			*dest = []interface{}{}

		case taggedNode:
			value, err := readScalar(br)
			if nil != err {
				return nil, err
			}
			record := []interface{}{nil, nil, value}
			*dest = record
			stack = append(stack, &record[1], &record[0])

		case taggedKeyedNode:
			value, err := readScalar(br)
			if nil != err {
				return nil, err
			}
			key, err := readScalar(br)
			if nil != err {
				return nil, err
			}
			if _, ok := key.(bst.Item); !ok {
				return nil, fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("key is %T", key))
			}
			record := []interface{}{nil, nil, value, key}
			*dest = record
			stack = append(stack, &record[1], &record[0])

		default:
			return nil, fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("read invalid node tag: 0x%02x", tag))
		}
	}

	tag, _, err = readRecord(br)
	if nil != err {
		return nil, err
	}
	if taggedEOF != tag {
		return nil, fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("expected EOF: %d but read: %d", taggedEOF, tag))
	}
	return result.([]interface{}), nil
}

// Pack - encode to a byte slice
func Pack(data []interface{}) ([]byte, error) {
	buffer := &bytes.Buffer{}
	if err := Encode(buffer, data); nil != err {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Unpack - decode from a byte slice
func Unpack(packed []byte) ([]interface{}, error) {
	return Decode(bytes.NewReader(packed))
}

// write a value record
func writeScalar(w *bufio.Writer, value interface{}) error {
	switch v := value.(type) {
	case nil:
		return writeRecord(w, taggedNil, nil)
	case string:
		return writeRecord(w, taggedString, []byte(v))
	case int:
		return writeRecord(w, taggedInteger, toVarint64(zigzag(int64(v))))
	case int64:
		return writeRecord(w, taggedInteger, toVarint64(zigzag(v)))
	case bool:
		b := []byte{0}
		if v {
			b[0] = 1
		}
		return writeRecord(w, taggedBoolean, b)
	case []byte:
		return writeRecord(w, taggedBytes, v)
	case bst.String, bst.Integer:
		return writeKey(w, v)
	default:
		return fault.NewKeyError(fault.ErrUnsupportedType, fmt.Sprintf("%T", value))
	}
}

// write a key record
func writeKey(w *bufio.Writer, key interface{}) error {
	switch k := key.(type) {
	case bst.String:
		return writeRecord(w, taggedStringKey, []byte(k))
	case bst.Integer:
		return writeRecord(w, taggedIntegerKey, toVarint64(zigzag(int64(k))))
	default:
		return fault.NewKeyError(fault.ErrUnsupportedType, fmt.Sprintf("key %T", key))
	}
}

// read a value or key record
func readScalar(r *bufio.Reader) (interface{}, error) {
	tag, packed, err := readRecord(r)
	if nil != err {
		return nil, err
	}
	switch tag {
	case taggedNil:
		return nil, nil
	case taggedString:
		return string(packed), nil
	case taggedInteger:
		n, err := unpackInteger(packed)
		return n, err
	case taggedBoolean:
		if 1 != len(packed) || packed[0] > 1 {
			return nil, fault.NewKeyError(fault.ErrCorruptData, "boolean")
		}
		return 1 == packed[0], nil
	case taggedBytes:
		return packed, nil
	case taggedStringKey:
		return bst.String(packed), nil
	case taggedIntegerKey:
		n, err := unpackInteger(packed)
		return bst.Integer(n), err
	default:
		return nil, fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("read invalid value tag: 0x%02x", tag))
	}
}

func unpackInteger(packed []byte) (int64, error) {
	u, n := fromVarint64(packed)
	if 0 == n || n != len(packed) {
		return 0, fault.NewKeyError(fault.ErrCorruptData, "integer")
	}
	return unzigzag(u), nil
}

// write a tagged record
func writeRecord(w *bufio.Writer, tag tagType, packed []byte) error {
	if len(packed) > maximumRecordLength {
		return fault.NewKeyError(fault.ErrRecordTooLong, len(packed))
	}
	err := w.WriteByte(byte(tag))
	if nil != err {
		return err
	}
	_, err = w.Write(toVarint64(uint64(len(packed))))
	if nil != err {
		return err
	}
	_, err = w.Write(packed)
	return err
}

// read a tagged record
func readRecord(r *bufio.Reader) (tagType, []byte, error) {
	tag, err := r.ReadByte()
	if io.EOF == err {
		return taggedEOF, nil, fault.NewKeyError(fault.ErrCorruptData, "missing record")
	} else if nil != err {
		return taggedEOF, nil, err
	}

	count, err := readVarint64(r)
	if nil != err {
		return taggedEOF, nil, err
	}
	if count > maximumRecordLength {
		return taggedEOF, nil, fault.NewKeyError(fault.ErrRecordTooLong, count)
	}

	buffer := make([]byte, count)
	_, err = io.ReadFull(r, buffer)
	if io.EOF == err || io.ErrUnexpectedEOF == err {
		return taggedEOF, nil, fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("record: expected: %d bytes", count))
	} else if nil != err {
		return taggedEOF, nil, err
	}
	return tagType(tag), buffer, nil
}
