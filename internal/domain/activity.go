package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Activity представляет занятие с расписанием и списком участников
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft возвращает количество свободных мест (без проверки на отрицательность)
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// ActivityCollection представляет ответ GET /activities.
// Порядок занятий совпадает с порядком ключей в JSON объекте.
type ActivityCollection []Activity

// UnmarshalJSON разбирает JSON объект name -> activity с сохранением порядка ключей
func (c *ActivityCollection) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("activities: expected JSON object, got %v", tok)
	}

	out := make(ActivityCollection, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("activities: unexpected key %v", tok)
		}

		var a Activity
		if err := dec.Decode(&a); err != nil {
			return fmt.Errorf("activities: decode %q: %w", name, err)
		}
		a.Name = name
		out = append(out, a)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = out
	return nil
}

// MarshalJSON кодирует коллекцию обратно в JSON объект, сохраняя порядок
func (c ActivityCollection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
