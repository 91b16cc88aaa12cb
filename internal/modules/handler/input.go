package handler

import (
	"bytes"
	"strconv"

	"github.com/bytedance/sonic"
)

// Amount accepts a JSON number, a numeric string or null and keeps the raw text
// for the service layer to parse.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := sonic.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(b), 64); err != nil {
		return err
	}
	*a = Amount(b)
	return nil
}

func (a *Amount) ptr() *string {
	if a == nil {
		return nil
	}
	s := string(*a)
	return &s
}
