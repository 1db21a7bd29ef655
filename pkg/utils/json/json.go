// Package json wraps bytedance/sonic behind the encoding/json call surface
// so the codec can be swapped in one place.
package json

import (
	"github.com/bytedance/sonic"
)

func MarshalString(v interface{}) (string, error) {
	return sonic.MarshalString(v)
}

func Unmarshal(data []byte, v interface{}) error {
	return sonic.Unmarshal(data, v)
}

func UnmarshalString(data string, v interface{}) error {
	return sonic.UnmarshalString(data, v)
}
