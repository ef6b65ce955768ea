package jsonpatch

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Op is one RFC 6902 operation.
type Op = map[string]interface{}

// Between returns the patch that turns the JSON form of a into that of b.
// Operations are ordered by path so equal inputs always give equal patches.
func Between(a, b interface{}) ([]Op, error) {
	av, err := toDocument(a)
	if err != nil {
		return nil, err
	}
	bv, err := toDocument(b)
	if err != nil {
		return nil, err
	}
	ops := Diff(av, bv, "")
	if ops == nil {
		ops = []Op{}
	}
	return ops, nil
}

func toDocument(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patch operand: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode patch operand: %w", err)
	}
	return doc, nil
}

// Diff computes an RFC 6902 JSON Patch that transforms a into b.
// Both a and b should be the result of json.Unmarshal into interface{}.
// Path should be "" for the root document.
func Diff(a, b interface{}, path string) []Op {
	// Both nil: no change
	if a == nil && b == nil {
		return nil
	}
	// One is nil: replace
	if a == nil || b == nil {
		return []Op{replaceOp(path, b)}
	}

	// Try matching types
	aMap, aIsMap := a.(map[string]interface{})
	bMap, bIsMap := b.(map[string]interface{})
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]interface{})
	bArr, bIsArr := b.([]interface{})
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	// Different types or different primitive values
	if a != b {
		return []Op{replaceOp(path, b)}
	}

	return nil
}

func diffObjects(a, b map[string]interface{}, path string) []Op {
	var ops []Op

	// Removed keys (in a but not in b)
	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			ops = append(ops, removeOp(path+"/"+escapeKey(k)))
		}
	}

	// Added and changed keys
	for _, k := range sortedKeys(b) {
		bv := b[k]
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			ops = append(ops, addOp(childPath, bv))
		} else {
			sub := Diff(av, bv, childPath)
			ops = append(ops, sub...)
		}
	}

	return ops
}

func diffArrays(a, b []interface{}, path string) []Op {
	var ops []Op

	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	// Compare common elements
	for i := 0; i < minLen; i++ {
		sub := Diff(a[i], b[i], path+"/"+strconv.Itoa(i))
		ops = append(ops, sub...)
	}

	// Elements removed (reverse order to keep indices valid)
	for i := len(a) - 1; i >= minLen; i-- {
		ops = append(ops, removeOp(path+"/"+strconv.Itoa(i)))
	}

	// Elements added
	for i := minLen; i < len(b); i++ {
		ops = append(ops, addOp(path+"/"+strconv.Itoa(i), b[i]))
	}

	return ops
}

func replaceOp(path string, value interface{}) Op {
	return Op{"op": "replace", "path": path, "value": value}
}

func addOp(path string, value interface{}) Op {
	return Op{"op": "add", "path": path, "value": value}
}

func removeOp(path string) Op {
	return Op{"op": "remove", "path": path}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
