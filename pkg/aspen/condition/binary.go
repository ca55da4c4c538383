package condition

import (
	"bytes"
	"encoding/base64"
)

func binaryEquals(value, operand string) bool {
	v, err1 := base64.StdEncoding.DecodeString(value)
	o, err2 := base64.StdEncoding.DecodeString(operand)
	return err1 == nil && err2 == nil && bytes.Equal(v, o)
}
