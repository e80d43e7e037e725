package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/law-makers/salesurl/pkg/models"
)

// Parse projects a search export onto profile requests.
//
// data must be a JSON array of objects. Every object must carry sales_url;
// the first record without it aborts the whole conversion, nothing is skipped.
// The result has the same length and order as the input and is never nil.
func Parse(data []byte) ([]models.ProfileRequest, error) {
	if !utf8.Valid(data) {
		return nil, newError(ErrCodeParse, "input is not valid UTF-8", nil)
	}
	if !gjson.ValidBytes(data) {
		return nil, newError(ErrCodeParse, "invalid JSON document", nil)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, newError(ErrCodeParse, fmt.Sprintf("expected a JSON array, got %s", typeName(root)), nil)
	}

	elems := root.Array()
	doc := make([]models.ProfileRequest, 0, len(elems))
	for i, elem := range elems {
		req, err := project(elem)
		if err != nil {
			err.Index = i
			return nil, err
		}
		doc = append(doc, req)
	}
	return doc, nil
}

// project keeps only sales_url from a single record.
func project(record gjson.Result) (models.ProfileRequest, *Error) {
	if !record.IsObject() {
		return models.ProfileRequest{}, newError(ErrCodeParse, fmt.Sprintf("record is %s, not an object", typeName(record)), nil)
	}

	value := lastValue(record, models.FieldSalesURL)
	if !value.Exists() {
		e := newError(ErrCodeMissingField, "record has no "+models.FieldSalesURL, nil)
		e.Field = models.FieldSalesURL
		return models.ProfileRequest{}, e
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(value.Raw)); err != nil {
		e := newError(ErrCodeParse, "unreadable "+models.FieldSalesURL+" value", err)
		e.Field = models.FieldSalesURL
		return models.ProfileRequest{}, e
	}

	return models.ProfileRequest{SalesURL: json.RawMessage(compact.Bytes())}, nil
}

// lastValue returns the value of the last occurrence of key in obj, so a
// repeated key resolves the same way a decoder filling a map would.
func lastValue(obj gjson.Result, key string) gjson.Result {
	var value gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			value = v
		}
		return true
	})
	return value
}

func typeName(r gjson.Result) string {
	switch {
	case r.IsArray():
		return "an array"
	case r.IsObject():
		return "an object"
	}
	switch r.Type {
	case gjson.String:
		return "a string"
	case gjson.Number:
		return "a number"
	case gjson.True, gjson.False:
		return "a boolean"
	case gjson.Null:
		return "null"
	default:
		return "empty"
	}
}
