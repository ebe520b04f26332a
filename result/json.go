package result

import (
	"errors"

	json "github.com/goccy/go-json"
)

type okEnvelope[T any] struct {
	Ok T `json:"ok"`
}

type errEnvelope[E any] struct {
	Err E `json:"err"`
}

// MarshalJSON encodes the Result as a single-key object: {"ok": value} for
// Ok, {"err": reason} for Err.
func (r Result[T, E]) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(okEnvelope[T]{Ok: r.value})
	}
	return json.Marshal(errEnvelope[E]{Err: r.reason})
}

// UnmarshalJSON decodes the encoding produced by MarshalJSON. Objects
// carrying neither key, or both, are rejected.
func (r *Result[T, E]) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	okRaw, hasOk := probe["ok"]
	errRaw, hasErr := probe["err"]
	switch {
	case hasOk && hasErr:
		return errors.New(`result: object has both "ok" and "err"`)
	case hasOk:
		var value T
		if err := json.Unmarshal(okRaw, &value); err != nil {
			return err
		}
		*r = Ok[E](value)
	case hasErr:
		var reason E
		if err := json.Unmarshal(errRaw, &reason); err != nil {
			return err
		}
		*r = Err[T](reason)
	default:
		return errors.New(`result: object has neither "ok" nor "err"`)
	}
	return nil
}
