// Package ref resuelve campos de relación que llegan del exterior en dos
// formas: un identificador pelado ("abc-123") o el objeto poblado
// ({"id": "abc-123", ...}), según qué endpoint los haya rellenado.
//
// En lugar de repetir el `typeof x === "string"` en cada punto de entrada,
// los DTOs declaran el campo como ref.Ref y resuelven con ID() u Object().
package ref

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ref es la unión etiquetada "id o objeto poblado" de un campo de relación.
// El valor cero es una referencia vacía (IsZero() == true).
type Ref struct {
	id  string
	raw json.RawMessage // nil si llegó como id pelado
}

// FromID construye una referencia a partir de un identificador.
func FromID(id string) Ref {
	return Ref{id: id}
}

// ID devuelve el identificador referenciado, venga como venga el campo.
// Vacío si la referencia está vacía o el objeto no trae "id".
func (r Ref) ID() string {
	return r.id
}

// IsZero indica si la referencia está vacía (campo ausente o null).
func (r Ref) IsZero() bool {
	return r.id == "" && r.raw == nil
}

// Populated indica si el campo llegó como objeto expandido.
func (r Ref) Populated() bool {
	return r.raw != nil
}

// Object decodifica el objeto poblado en into. Error si la referencia
// llegó como id pelado (resolver primero con Populated()).
func (r Ref) Object(into any) error {
	if r.raw == nil {
		return fmt.Errorf("ref: la referencia %q no llegó poblada", r.id)
	}
	return json.Unmarshal(r.raw, into)
}

// UnmarshalJSON acepta string, objeto con campo "id" (o "_id") o null.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("ref: id inválido: %w", err)
		}
		*r = Ref{id: s}
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			ID    string `json:"id"`
			AltID string `json:"_id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("ref: objeto inválido: %w", err)
		}
		id := obj.ID
		if id == "" {
			id = obj.AltID
		}
		*r = Ref{id: id, raw: append(json.RawMessage(nil), data...)}
		return nil
	}
	return fmt.Errorf("ref: se esperaba string u objeto, llegó %s", string(data))
}

// MarshalJSON serializa siempre como id pelado; la forma poblada es solo de entrada.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(r.id)
}
