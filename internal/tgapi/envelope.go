package tgapi

import (
	"encoding/json"

	"github.com/go-faster/jx"

	domainerrors "github.com/central-university-dev/go-tgbot/internal/domain/errors"
)

var nullResult = json.RawMessage("null")

type envelope struct {
	ok          bool
	result      jx.Raw
	description string
	errorCode   int
	retryAfter  int
	migrateTo   int64
}

// DecodeEnvelope разбирает конверт {ok, result, description} и возвращает сырой result.
// Тело, которое не разбирается как JSON-объект, трактуется как конверт без ok.
func DecodeEnvelope(operation string, body []byte) (json.RawMessage, error) {
	env, err := parseEnvelope(body)
	if err != nil || !env.ok {
		apiErr := &domainerrors.APIError{Operation: operation}
		if err == nil {
			apiErr.Description = env.description
			apiErr.Code = env.errorCode
			apiErr.RetryAfter = env.retryAfter
			apiErr.MigrateToChatID = env.migrateTo
		}

		return nil, apiErr
	}

	if env.result == nil {
		return nullResult, nil
	}

	return json.RawMessage(append([]byte(nil), env.result...)), nil
}

func parseEnvelope(body []byte) (envelope, error) {
	var env envelope

	d := jx.DecodeBytes(body)

	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "ok":
			ok, err := decodeTruthy(d)
			if err != nil {
				return err
			}

			env.ok = ok
		case "result":
			raw, err := d.Raw()
			if err != nil {
				return err
			}

			env.result = raw
		case "description":
			description, err := decodeText(d)
			if err != nil {
				return err
			}

			env.description = description
		case "error_code":
			if d.Next() != jx.Number {
				return d.Skip()
			}

			code, err := d.Float64()
			if err != nil {
				return err
			}

			env.errorCode = int(code)
		case "parameters":
			return decodeParameters(d, &env)
		default:
			return d.Skip()
		}

		return nil
	})

	return env, err
}

// decodeTruthy приводит ok к bool: число истинно, если не ноль, null ложен,
// строки, массивы и объекты не приводятся и дают ложь.
func decodeTruthy(d *jx.Decoder) (bool, error) {
	switch d.Next() {
	case jx.Bool:
		return d.Bool()
	case jx.Number:
		n, err := d.Float64()
		if err != nil {
			return false, err
		}

		return n != 0, nil
	case jx.Null:
		return false, d.Null()
	default:
		return false, d.Skip()
	}
}

// decodeText возвращает строку как есть, число или bool как их литерал, иначе пустую строку.
func decodeText(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.String:
		return d.Str()
	case jx.Number, jx.Bool:
		raw, err := d.Raw()
		if err != nil {
			return "", err
		}

		return raw.String(), nil
	default:
		return "", d.Skip()
	}
}

func decodeParameters(d *jx.Decoder, env *envelope) error {
	if d.Next() != jx.Object {
		return d.Skip()
	}

	return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if d.Next() != jx.Number {
			return d.Skip()
		}

		switch string(key) {
		case "retry_after":
			v, err := d.Float64()
			if err != nil {
				return err
			}

			env.retryAfter = int(v)
		case "migrate_to_chat_id":
			v, err := d.Int64()
			if err != nil {
				return err
			}

			env.migrateTo = v
		default:
			return d.Skip()
		}

		return nil
	})
}
