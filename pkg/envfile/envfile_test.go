package envfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_EmptyInputSelectsDefault(t *testing.T) {
	for _, f := range Fields {
		t.Run(f.Key, func(t *testing.T) {
			r := NewRecord()
			require.NoError(t, r.Set(f.Key, ""))
			assert.Equal(t, f.Default, r.Get(f.Key))
		})
	}
}

func TestRecord_ValueKeptVerbatim(t *testing.T) {
	r := NewRecord()
	require.NoError(t, r.Set("JWT_SECRET", "s3cr3t=with#chars"))
	assert.Equal(t, "s3cr3t=with#chars", r.Get("JWT_SECRET"))

	require.NoError(t, r.Set("NODE_ENV", " staging "))
	assert.Equal(t, " staging ", r.Get("NODE_ENV"))
}

func TestRecord_UnknownKey(t *testing.T) {
	assert.Error(t, NewRecord().Set("DATABASE_URL", "x"))
}

func TestRecord_Bytes(t *testing.T) {
	r := Defaults()
	require.NoError(t, r.Set("PORT", "8080"))

	want := "PORT=8080\n" +
		"MONGO_URI=mongodb://localhost:27017/career-pathway\n" +
		"JWT_SECRET=your_jwt_secret_key_here\n" +
		"NODE_ENV=development\n" +
		"CORS_ORIGIN=http://localhost:3000\n"
	assert.Equal(t, want, string(r.Bytes()))
}

func TestWrite_RejectsIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	r := NewRecord()
	require.NoError(t, r.Set("PORT", "5000"))

	err := Write(path, r)

	assert.True(t, errors.Is(err, ErrIncomplete))
	assert.False(t, Exists(path))
}

func TestWrite_OverwritesAndReadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OLD=value\nSTALE=1\n"), 0o600))

	r := Defaults()
	require.NoError(t, r.Set("NODE_ENV", "production"))
	require.NoError(t, Write(path, r))

	values, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Len(t, values, 5)
	assert.Equal(t, "production", values["NODE_ENV"])
	assert.NotContains(t, values, "OLD")
}

func TestRead_KnownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("NODE_ENV=test\nPORT=1\nEXTRA=x\n"), 0o600))

	values, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"PORT", "NODE_ENV"}, KnownKeys(values))

	_, err = Read(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
