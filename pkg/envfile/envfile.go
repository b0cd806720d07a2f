// Package envfile models the backend's .env configuration record.
package envfile

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

// Field describes one key of the record with its prompt and default.
type Field struct {
	Key     string
	Prompt  string
	Default string
}

// Fields lists the record's keys in the order they are prompted and written.
var Fields = []Field{
	{Key: "PORT", Prompt: "Enter the port for the backend server", Default: "5000"},
	{Key: "MONGO_URI", Prompt: "Enter MongoDB URI", Default: "mongodb://localhost:27017/career-pathway"},
	{Key: "JWT_SECRET", Prompt: "Enter JWT secret key", Default: "your_jwt_secret_key_here"},
	{Key: "NODE_ENV", Prompt: "Enter NODE_ENV", Default: "development"},
	{Key: "CORS_ORIGIN", Prompt: "Enter CORS origin", Default: "http://localhost:3000"},
}

// ErrIncomplete is returned when writing a record with unset keys.
var ErrIncomplete = errors.New("config record is incomplete")

// Record holds the values for every field.
type Record struct {
	values map[string]string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string, len(Fields))}
}

// Defaults returns a record with every field at its default.
func Defaults() *Record {
	r := NewRecord()
	for _, f := range Fields {
		r.values[f.Key] = f.Default
	}
	return r
}

// Set stores value for key verbatim; an empty value selects the field default.
func (r *Record) Set(key, value string) error {
	f, ok := lookup(key)
	if !ok {
		return errors.Newf("unknown config key %q", key)
	}
	if value == "" {
		value = f.Default
	}
	r.values[key] = value
	return nil
}

// Get returns the value for key.
func (r *Record) Get(key string) string {
	return r.values[key]
}

// Complete reports whether every field has a value.
func (r *Record) Complete() bool {
	for _, f := range Fields {
		if r.values[f.Key] == "" {
			return false
		}
	}
	return true
}

// Bytes renders the record as KEY=value lines, unquoted, in field order.
func (r *Record) Bytes() []byte {
	var b strings.Builder
	for _, f := range Fields {
		b.WriteString(f.Key)
		b.WriteByte('=')
		b.WriteString(r.values[f.Key])
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Write replaces the file at path with the record. Incomplete records
// are rejected so a partial config never reaches disk.
func Write(path string, r *Record) error {
	if !r.Complete() {
		return ErrIncomplete
	}
	if err := os.WriteFile(path, r.Bytes(), 0o644); err != nil { //nolint:gosec // .env is read by the app user
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// Exists reports whether a config file is already present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Read parses an existing env file.
func Read(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return values, nil
}

// KnownKeys returns the record keys present in values, in field order.
func KnownKeys(values map[string]string) []string {
	var keys []string
	for _, f := range Fields {
		if _, ok := values[f.Key]; ok {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

func lookup(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
