package envelope

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/otelpartial/partialspan"
	"github.com/otelpartial/partialspan/schema_registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSchemaRegistryServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.schemaregistry.v1+json")
		switch r.URL.Path {
		case "/subjects/partial-span-proto/versions":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": 5})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestProtoSerializer_RoundTripsThroughSchemaRegistry(t *testing.T) {
	t.Parallel()
	srv := newSchemaRegistryServer(t)
	defer srv.Close()

	registry, err := schema_registry.NewClient(schema_registry.Config{URL: srv.URL})
	require.NoError(t, err)

	ser, err := NewProtoSerializer(registry, "partial-span-proto")
	require.NoError(t, err)
	assert.Equal(t, bodyTypeProtobuf, ser.BodyType())

	span := newTestSpan(t, nil)
	body, err := ser.Serialize(span, partialspan.SignalHeartbeat)
	require.NoError(t, err)
	assert.NotEmpty(t, body)

	body2, err := ser.Serialize(span, partialspan.SignalHeartbeat)
	require.NoError(t, err)
	assert.Equal(t, body, body2, "encoding the same ended span twice is deterministic")
}

func TestNewProtoSerializer_RejectsNilRegistry(t *testing.T) {
	t.Parallel()
	_, err := NewProtoSerializer(nil, "partial-span-proto")
	assert.Error(t, err)
}
