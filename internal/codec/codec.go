// Package codec converts cached values to and from bytes.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	// NameJSON selects the JSON codec.
	NameJSON = "json"
	// NameMsgpack selects the msgpack codec.
	NameMsgpack = "msgpack"
)

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// JSON is a Codec backed by encoding/json. The zero value is ready to use.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }

func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}

// Msgpack is a Codec backed by vmihailenco/msgpack/v5. The zero value is ready to use.
// Fields use `msgpack:"name"` tags.
type Msgpack[V any] struct{}

func (Msgpack[V]) Encode(v V) ([]byte, error) { return msgpack.Marshal(v) }

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}

// ByName returns the codec registered under name.
func ByName[V any](name string) (Codec[V], error) {
	switch name {
	case "", NameJSON:
		return JSON[V]{}, nil
	case NameMsgpack:
		return Msgpack[V]{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}
