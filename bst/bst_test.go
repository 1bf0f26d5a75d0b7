// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

func TestListShort(t *testing.T) {
	addList := []bst.String{
		"k4x", "b1q", "zz0", "c7e", "m2m",
		"a9a",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// duplicates are kept, each one is a separate entry
func TestListDuplicates(t *testing.T) {
	addList := []bst.String{
		"qwe", "asd", "zxc", "qwe", "rty",
		"fgh", "vbn", "qwe", "asd", "uio",
		"qwe", "qwe", "qwe", "qwe", "qwe",
		"jkl", "qwe", "mmm", "qwe", "qwe",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	addList := make([]bst.String, 250)
	for i := range addList {
		addList[i] = makeKey(r)
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// insert the whole list, delete a prefix, check, then delete the rest
func doList(t *testing.T, addList []bst.String) {

	for i := 0; i < len(addList)+1; i += 1 {

		tree := bst.New(true)
		for _, key := range addList {
			err := tree.Insert("data:"+string(key), key)
			assert.Nil(t, err, "insert error")
		}
		assert.Equal(t, len(addList), tree.Count(), "wrong count after insert")

		if err := tree.Check(); nil != err {
			t.Log(tree.PrettyPrint(0, true, false))
			t.Fatalf("add: inconsistent tree: %s", err)
		}

		for _, key := range addList[:i] {
			value, k, err := tree.Pop(key)
			if nil != err {
				t.Fatalf("pop: %q error: %s", key, err)
			}
			if "data:"+string(key) != value {
				t.Fatalf("pop returned: %q  expected: %q", value, "data:"+key)
			}
			assert.Equal(t, key, k, "wrong key from pop")
		}

		if err := tree.Check(); nil != err {
			t.Log(tree.PrettyPrint(0, true, false))
			t.Fatalf("delete: inconsistent tree: %s", err)
		}
		assert.Equal(t, len(addList)-i, tree.Count(), "wrong count after delete")

		for _, key := range addList[i:] {
			if _, _, err := tree.Pop(key); nil != err {
				t.Fatalf("pop remainder: %q error: %s", key, err)
			}
		}
		if !tree.IsEmpty() {
			t.Log(tree.PrettyPrint(0, true, false))
			t.Fatal("remaining nodes")
		}
		assert.Equal(t, 0, tree.Count(), "remaining count not zero")
	}
}

// traverse the tree forwards and backwards to check iteration
func doTraverse(t *testing.T, addList []bst.String) {

	tree := bst.New(true)
	for _, key := range addList {
		tree.Insert(key, nil)
	}

	expected := make([]string, len(addList))
	for i, key := range addList {
		expected[i] = string(key)
	}
	sort.Strings(expected)

	assert.Equal(t, bst.String(expected[0]), tree.First(), "wrong first")
	assert.Equal(t, bst.String(expected[len(expected)-1]), tree.Last(), "wrong last")

	n := 0
	for it := tree.Keys(false); it.Next(); n += 1 {
		if 0 != it.Key().Compare(bst.String(expected[n])) {
			t.Fatalf("next item: actual: %q  expected: %q", it.Key(), expected[n])
		}
		assert.Equal(t, it.Key(), it.Value(), "self keyed value differs from key")
	}
	assert.Equal(t, len(expected), n, "forward item count")

	n = 0
	for it := tree.Keys(true); it.Next(); n += 1 {
		i := len(expected) - 1 - n
		if 0 != it.Key().Compare(bst.String(expected[i])) {
			t.Fatalf("prev item: actual: %q  expected: %q", it.Key(), expected[i])
		}
	}
	assert.Equal(t, len(expected), n, "reverse item count")
}

func makeKey(r *rand.Rand) bst.String {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, 3)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return bst.String(b)
}

// random inserts and deletes with a consistency check after each
func TestRandomTree(t *testing.T) {
	randomTree(t, 1, 1200, 1000)
	randomTree(t, 2, 900, 300)
	randomTree(t, 3, 500, 500)
}

func randomTree(t *testing.T, seed int64, total int, toDelete int) {
	r := rand.New(rand.NewSource(seed))
	tree := bst.New(true)
	keys := make([]bst.Integer, total)

	for i := range keys {
		keys[i] = bst.Integer(r.Intn(total / 2))
		err := tree.Insert(int64(keys[i]), keys[i])
		assert.Nil(t, err, "insert error")
	}
	if err := tree.Check(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}

	r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for _, key := range keys[:toDelete] {
		value, _, err := tree.Pop(key)
		if nil != err {
			t.Fatalf("pop: %d  error: %s", key, err)
		}
		assert.Equal(t, int64(key), value, "wrong value")
		if err := tree.Check(); nil != err {
			t.Fatalf("inconsistent tree after pop: %d  error: %s", key, err)
		}
	}
	assert.Equal(t, total-toDelete, tree.Count(), "wrong count")

	remaining := append([]bst.Integer{}, keys[toDelete:]...)
	sort.Slice(remaining, func(i, j int) bool { return remaining[i] < remaining[j] })
	actual := tree.KeyList(false)
	assert.Equal(t, len(remaining), len(actual), "wrong key list length")
	for i, k := range actual {
		assert.Equal(t, remaining[i], k, "key list differs at: %d", i)
	}
}

func TestInsertInOrder(t *testing.T) {
	tree := bst.New(true)
	for _, k := range []bst.Integer{5, 3, 8, 1, 4, 7, 9} {
		assert.Nil(t, tree.Insert(k, nil), "insert error")
	}
	assert.Equal(t, []bst.Item{
		bst.Integer(1), bst.Integer(3), bst.Integer(4), bst.Integer(5),
		bst.Integer(7), bst.Integer(8), bst.Integer(9),
	}, tree.KeyList(false), "wrong key order")
}

func TestAscendingHeight(t *testing.T) {
	balanced := bst.New(true)
	unbalanced := bst.New(false)
	for k := bst.Integer(1); k <= 5; k += 1 {
		balanced.Insert(k, nil)
		unbalanced.Insert(k, nil)
	}
	assert.Equal(t, 3, balanced.Height(), "balanced height")
	assert.Equal(t, 5, unbalanced.Height(), "unbalanced height")
}

func TestPopMissing(t *testing.T) {
	tree := bst.New(true)
	tree.Insert("a", bst.Integer(10))
	tree.Insert("b", bst.Integer(20))
	tree.Insert("c", bst.Integer(30))

	value, key, err := tree.Pop(bst.Integer(20))
	assert.Nil(t, err, "pop error")
	assert.Equal(t, "b", value, "wrong value")
	assert.Equal(t, bst.Integer(20), key, "wrong key")

	_, err = tree.Find(bst.Integer(20))
	assert.True(t, fault.IsErrNotFound(err), "expected not found, got: %v", err)

	_, _, err = tree.Pop(bst.Integer(20))
	assert.True(t, fault.IsErrNotFound(err), "expected not found, got: %v", err)
	assert.Equal(t, 2, tree.Count(), "count changed by failed pop")
	assert.Equal(t, []bst.Item{bst.Integer(10), bst.Integer(30)}, tree.KeyList(false), "wrong keys")

	err = tree.Delete(bst.Integer(99))
	assert.True(t, fault.IsErrNotFound(err), "expected not found, got: %v", err)
}

func TestFindRepeatable(t *testing.T) {
	tree := bst.New(true)
	for k := bst.Integer(0); k < 50; k += 1 {
		tree.Insert(int64(k)*3, k)
	}
	for i := 0; i < 3; i += 1 {
		value, err := tree.Find(bst.Integer(17))
		assert.Nil(t, err, "find error")
		assert.Equal(t, int64(51), value, "wrong value")
	}
	assert.True(t, tree.Has(bst.Integer(49)), "missing key")
	assert.False(t, tree.Has(bst.Integer(50)), "unexpected key")
}

func TestUpdateValue(t *testing.T) {
	tree := bst.New(true)
	for _, k := range []bst.Integer{2, 9, 5, 1, 7} {
		tree.Insert("old", k)
	}
	assert.Nil(t, tree.Update(bst.Integer(5), "x", nil), "update error")

	value, err := tree.Find(bst.Integer(5))
	assert.Nil(t, err, "find error")
	assert.Equal(t, "x", value, "value not updated")
	assert.Equal(t, 5, tree.Count(), "count changed")

	it := tree.Keys(false)
	expected := []bst.Integer{1, 2, 5, 7, 9}
	for i := 0; it.Next(); i += 1 {
		assert.Equal(t, expected[i], it.Key(), "wrong order")
		if 5 == expected[i] {
			assert.Equal(t, "x", it.Value(), "wrong value")
		} else {
			assert.Equal(t, "old", it.Value(), "other value changed")
		}
	}
}

func TestUpdateKey(t *testing.T) {
	tree := bst.New(true)
	tree.Insert(bst.String("self"), nil)
	tree.Insert("v", bst.String("other"))

	// re-insert unchanged keeps the entry self keyed
	assert.Nil(t, tree.Update(bst.String("self"), nil, nil), "update error")
	assert.Equal(t, []interface{}{[]interface{}{}, []interface{}{}, bst.String("self")}, findRecord(tree.Export(), bst.String("self")), "self keyed entry changed shape")

	assert.Nil(t, tree.Update(bst.String("self"), nil, bst.String("renamed")), "update error")
	value, err := tree.Find(bst.String("renamed"))
	assert.Nil(t, err, "find error")
	assert.Equal(t, bst.String("self"), value, "value lost")
	assert.False(t, tree.Has(bst.String("self")), "old key remains")

	err = tree.Update(bst.String("missing"), "x", nil)
	assert.True(t, fault.IsErrNotFound(err), "expected not found, got: %v", err)

	err = tree.Update(bst.String("other"), nil, bst.Integer(3))
	assert.True(t, fault.IsErrInvalid(err), "expected type mismatch, got: %v", err)
	assert.Equal(t, 2, tree.Count(), "count changed by failed update")
	assert.True(t, tree.Has(bst.String("other")), "entry removed by failed update")
}

// locate the exported record of a key, nil if not found
func findRecord(data []interface{}, key bst.Item) []interface{} {
	stack := [][]interface{}{data}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch len(r) {
		case 3:
			if r[2] == key {
				return []interface{}{[]interface{}{}, []interface{}{}, r[2]}
			}
		case 4:
			if r[3] == key {
				return []interface{}{[]interface{}{}, []interface{}{}, r[2], r[3]}
			}
		default:
			continue
		}
		stack = append(stack, r[0].([]interface{}), r[1].([]interface{}))
	}
	return nil
}

func TestDuplicateKeys(t *testing.T) {
	tree := bst.New(true)
	tree.Insert("first", bst.Integer(7))
	tree.Insert("second", bst.Integer(7))
	assert.Equal(t, 2, tree.Count(), "wrong count")

	_, _, err := tree.Pop(bst.Integer(7))
	assert.Nil(t, err, "pop error")
	assert.Equal(t, 1, tree.Count(), "wrong count")

	_, err = tree.Find(bst.Integer(7))
	assert.Nil(t, err, "remaining duplicate not found")
}

func TestTypeMismatch(t *testing.T) {
	tree := bst.New(true)
	assert.Nil(t, tree.Insert(bst.Integer(1), nil), "insert error")
	assert.Nil(t, tree.Insert(bst.Integer(2), nil), "insert error")

	err := tree.Insert(bst.String("a"), nil)
	assert.True(t, fault.IsErrInvalid(err), "expected type mismatch, got: %v", err)
	assert.Equal(t, 2, tree.Count(), "count changed by failed insert")

	err = tree.Insert(12, nil)
	assert.True(t, fault.IsErrInvalid(err), "expected type mismatch, got: %v", err)

	_, err = tree.Find(bst.String("a"))
	assert.True(t, fault.IsErrInvalid(err), "expected type mismatch, got: %v", err)

	_, _, err = tree.Pop(bst.String("a"))
	assert.True(t, fault.IsErrInvalid(err), "expected type mismatch, got: %v", err)
	assert.Equal(t, 2, tree.Count(), "count changed by failed pop")
	assert.Nil(t, tree.Check(), "tree inconsistent")
}

func TestRootCorrection(t *testing.T) {
	ascending := bst.New(true)
	descending := bst.New(true)
	for k := 0; k < 2000; k += 1 {
		ascending.Insert(bst.Integer(k), nil)
		descending.Insert(bst.Integer(1999-k), nil)
	}

	for _, tree := range []*bst.Tree{ascending, descending} {
		bf, err := tree.BalanceFactor(tree.RootKey())
		assert.Nil(t, err, "balance factor error")
		assert.True(t, bf >= -2 && bf <= 2, "root balance: %d", bf)
		assert.True(t, tree.Height() <= 16, "height: %d", tree.Height())
		assert.Nil(t, tree.Check(), "tree inconsistent")
	}
}

// a duplicated root key cannot be moved to the other side, the
// correction must give up rather than loop
func TestRootCorrectionDuplicates(t *testing.T) {
	tree := bst.New(true)
	for i := 0; i < 50; i += 1 {
		tree.Insert(i, bst.Integer(7))
	}
	assert.Equal(t, 50, tree.Count(), "wrong count")
	assert.Nil(t, tree.Check(), "tree inconsistent")

	for i := 0; i < 50; i += 1 {
		_, _, err := tree.Pop(bst.Integer(7))
		assert.Nil(t, err, "pop: %d error", i)
	}
	assert.True(t, tree.IsEmpty(), "tree not empty")
}

func TestPopDoesNotCorrectRoot(t *testing.T) {
	tree := bst.New(true)
	for k := bst.Integer(1); k <= 31; k += 1 {
		tree.Insert(k, nil)
	}
	root := tree.RootKey()
	for k := bst.Integer(1); k <= 8; k += 1 {
		assert.Nil(t, tree.Delete(k), "delete error")
	}
	assert.Equal(t, root, tree.RootKey(), "root changed by delete")
	bf, _ := tree.BalanceFactor(root)
	assert.True(t, bf < -2, "root was re-balanced: %d", bf)
}

func TestEmptyTree(t *testing.T) {
	tree := bst.New(true)
	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Nil(t, tree.First(), "first of empty tree")
	assert.Nil(t, tree.Last(), "last of empty tree")
	assert.Nil(t, tree.RootKey(), "root of empty tree")
	assert.Equal(t, 0, tree.Height(), "height of empty tree")
	assert.Equal(t, []interface{}{}, tree.Export(), "export of empty tree")
	assert.False(t, tree.Keys(false).Next(), "iteration of empty tree")
	assert.Equal(t, "+---UPPER-+\n| - EMPTY |\n+---LOWER-+\n", tree.PrettyPrint(0, true, false), "print of empty tree")

	_, err := tree.Find(bst.Integer(1))
	assert.True(t, fault.IsErrNotFound(err), "expected not found, got: %v", err)
}

func TestClear(t *testing.T) {
	tree := bst.New(true)
	for k := bst.Integer(0); k < 10; k += 1 {
		tree.Insert(k, nil)
	}
	tree.Clear()
	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Equal(t, 0, tree.Count(), "count not zero")
	assert.Nil(t, tree.Insert(bst.String("x"), nil), "insert after clear")
}

func TestOptions(t *testing.T) {
	tree := bst.NewWithOptions(bst.Options{Balance: true})
	assert.Equal(t, bst.Options{
		Balance:       true,
		Tolerance:     bst.DefaultTolerance,
		RootTolerance: bst.DefaultRootTolerance,
	}, tree.Options(), "defaults not applied")
}

// a failed import reports corrupt data and leaves the tree as it was
func TestImportCorrupt(t *testing.T) {
	empty := []interface{}{}
	leaf := func(key bst.Item) []interface{} {
		return []interface{}{empty, empty, key}
	}

	tests := []struct {
		name string
		data []interface{}
	}{
		{"short node", []interface{}{empty, empty}},
		{"value is not a key", []interface{}{empty, empty, 42}},
		{"low key above parent", []interface{}{leaf(bst.Integer(9)), empty, bst.Integer(5)}},
		{"mixed key types", []interface{}{leaf(bst.String("a")), empty, bst.Integer(5)}},
		{"child is not a node", []interface{}{"low", empty, bst.Integer(5)}},
	}

	for _, test := range tests {
		tree := bst.New(true)
		for _, k := range []bst.Integer{20, 10, 30} {
			assert.Nil(t, tree.Insert(k, nil), "insert: %d", k)
		}
		before := tree.KeyList(false)

		err := tree.Import(test.data)
		assert.True(t, fault.IsErrInvalid(err), "%s: expected invalid, got: %v", test.name, err)
		assert.True(t, errors.Is(err, fault.ErrCorruptData), "%s: expected corrupt data, got: %v", test.name, err)
		assert.Equal(t, 3, tree.Count(), "%s: count changed", test.name)
		assert.Equal(t, before, tree.KeyList(false), "%s: keys changed", test.name)
		assert.Nil(t, tree.Check(), "%s: tree damaged", test.name)
	}
}

// rendering depth is limited however deep the tree is
func TestPrintDepthLimit(t *testing.T) {
	tree := bst.New(false)
	for k := bst.Integer(0); k < 200; k += 1 {
		assert.Nil(t, tree.Insert(k, nil), "insert: %d", k)
	}
	assert.Equal(t, 200, tree.Height(), "expected a chain")

	limited := tree.PrettyPrint(bst.MaximumDepth, false, false)
	assert.Equal(t, bst.MaximumDepth+1, strings.Count(limited, "\n"), "lines at maximum depth")
	assert.Equal(t, limited, tree.PrettyPrint(1000, false, false), "depth not reduced")
	assert.Equal(t, limited, tree.PrettyPrint(bst.MaximumDepth+1, false, false), "depth not reduced")
}
