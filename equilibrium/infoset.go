package equilibrium

import "encoding/gob"

// infoSet is a hashable representation of a player's knowledge at a
// decision node: their identity plus the public history of resolved
// rounds.
type infoSet struct {
	key string
}

func (is *infoSet) Key() []byte {
	return []byte(is.key)
}

func (is *infoSet) MarshalBinary() ([]byte, error) {
	return []byte(is.key), nil
}

func (is *infoSet) UnmarshalBinary(buf []byte) error {
	is.key = string(buf)
	return nil
}

func init() {
	gob.Register(&infoSet{})
}
