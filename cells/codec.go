package cells

import (
	"github.com/fxamacker/cbor/v2"
)

// Codec pairs the CBOR encode and decode modes used for generic cell
// payloads. Encoding is deterministic so that pushing an unchanged value
// reproduces the stored bytes exactly.
type Codec struct {
	em cbor.EncMode
	dm cbor.DecMode
}

// NewCodec builds the deterministic codec.
func NewCodec() (Codec, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{em: em, dm: dm}, nil
}

func (c Codec) Marshal(value any) ([]byte, error) {
	return c.em.Marshal(value)
}

func (c Codec) Unmarshal(data []byte, into any) error {
	return c.dm.Unmarshal(data, into)
}

// defaultCodec backs CellOf. The options are static, so a construction
// failure is a bug caught at package init.
var defaultCodec = func() Codec {
	c, err := NewCodec()
	if err != nil {
		panic(err)
	}
	return c
}()
