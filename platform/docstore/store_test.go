package docstore_test

import (
	"testing"

	"github.com/jrsteele09/go-seller-bootstrap/platform/docstore"
	"github.com/stretchr/testify/require"
)

func TestDocument_String(t *testing.T) {
	doc := &docstore.Document{
		Exists: true,
		Data: map[string]any{
			"email": "seller@example.com",
			"empty": "",
			"count": 3,
		},
	}

	v, ok := doc.String("email")
	require.True(t, ok)
	require.Equal(t, "seller@example.com", v)

	_, ok = doc.String("empty")
	require.False(t, ok)
	_, ok = doc.String("count")
	require.False(t, ok)
	_, ok = doc.String("missing")
	require.False(t, ok)

	var missing *docstore.Document
	_, ok = missing.String("email")
	require.False(t, ok)

	_, ok = (&docstore.Document{Data: doc.Data}).String("email")
	require.False(t, ok, "fields of a non-existent document are ignored")
}
