package schema_registry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func newMockServer(t *testing.T, schemaID int, schema string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.schemaregistry.v1+json")
		switch r.URL.Path {
		case "/schemas/ids/1", "/schemas/ids/42":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"schema": schema})
		case "/subjects/partial-span/versions":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": schemaID})
		case "/subjects/partial-span/versions/latest":
			_ = json.NewEncoder(w).Encode(Metadata{ID: schemaID, Version: 1, Schema: schema})
		case "/compatibility/subjects/partial-span/versions/latest":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"is_compatible": true})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestNewClient_RequiresURL(t *testing.T) {
	t.Parallel()
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestClient_GetSchemaByID_CachesResult(t *testing.T) {
	t.Parallel()
	srv := newMockServer(t, 1, `syntax = "proto3"; message Span {}`)
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)

	schema, err := client.GetSchemaByID(1)
	require.NoError(t, err)
	assert.Contains(t, schema, "Span")

	srv.Close()
	schema2, err := client.GetSchemaByID(1)
	require.NoError(t, err)
	assert.Equal(t, schema, schema2)
}

func TestClient_GetLatestSchema(t *testing.T) {
	t.Parallel()
	srv := newMockServer(t, 42, `syntax = "proto3";`)
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL})
	require.NoError(t, err)

	meta, err := client.GetLatestSchema("partial-span")
	require.NoError(t, err)
	assert.Equal(t, 42, meta.ID)
	assert.Equal(t, "partial-span", meta.Subject)
}

func TestClient_RegisterSchema_CachesByContent(t *testing.T) {
	t.Parallel()
	srv := newMockServer(t, 7, `syntax = "proto3";`)
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL})
	require.NoError(t, err)

	id, err := client.RegisterSchema("partial-span", `syntax = "proto3";`, "PROTOBUF")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	id2, err := client.RegisterSchema("partial-span", `syntax = "proto3";`, "PROTOBUF")
	require.NoError(t, err)
	assert.Equal(t, id, id2)
}

func TestClient_CheckCompatibility(t *testing.T) {
	t.Parallel()
	srv := newMockServer(t, 1, `syntax = "proto3";`)
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL})
	require.NoError(t, err)

	ok, err := client.CheckCompatibility("partial-span", `syntax = "proto3";`, "PROTOBUF")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClient_NetworkErrors(t *testing.T) {
	t.Parallel()
	client, err := NewClient(Config{URL: "http://127.0.0.1:0", Timeout: 10 * time.Millisecond})
	require.NoError(t, err)

	_, err = client.GetSchemaByID(1)
	assert.Error(t, err)

	_, err = client.GetLatestSchema("partial-span")
	assert.Error(t, err)

	_, err = client.RegisterSchema("partial-span", "x", "PROTOBUF")
	assert.Error(t, err)

	_, err = client.CheckCompatibility("partial-span", "x", "PROTOBUF")
	assert.Error(t, err)
}

type captureLogger struct {
	infoCalled, warnCalled, errorCalled bool
}

func (c *captureLogger) InfoWithContext(_ context.Context, _ string, _ error, _ ...map[string]interface{}) {
	c.infoCalled = true
}
func (c *captureLogger) WarnWithContext(_ context.Context, _ string, _ error, _ ...map[string]interface{}) {
	c.warnCalled = true
}
func (c *captureLogger) ErrorWithContext(_ context.Context, _ string, _ error, _ ...map[string]interface{}) {
	c.errorCalled = true
}

func TestWithLogger(t *testing.T) {
	t.Parallel()
	client := &Client{}
	logger := &captureLogger{}
	out := client.WithLogger(logger)
	assert.Equal(t, client, out)
	assert.Equal(t, logger, client.logger)
}

func TestLogMethods_WithLogger(t *testing.T) {
	t.Parallel()
	logger := &captureLogger{}
	client := &Client{logger: logger}
	ctx := context.Background()

	client.logInfo(ctx, "info", nil)
	client.logWarn(ctx, "warn", nil)
	client.logError(ctx, "error", nil, nil)

	assert.True(t, logger.infoCalled)
	assert.True(t, logger.warnCalled)
	assert.True(t, logger.errorCalled)
}

func TestLogMethods_NoLogger(t *testing.T) {
	t.Parallel()
	client := &Client{}
	ctx := context.Background()

	assert.NotPanics(t, func() {
		client.logInfo(ctx, "info", nil)
		client.logWarn(ctx, "warn", nil)
		client.logError(ctx, "error", nil, nil)
	})
}

func TestWrapperSerializer_Roundtrip(t *testing.T) {
	t.Parallel()
	srv := newMockServer(t, 9, `syntax = "proto3";`)
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL})
	require.NoError(t, err)

	s, err := NewProtobufSerializer(ProtobufSerializerConfig{
		Registry: client,
		Subject:  "partial-span",
		Schema:   `syntax = "proto3";`,
		MarshalFunc: func(v interface{}) ([]byte, error) {
			return []byte("encoded"), nil
		},
	})
	require.NoError(t, err)

	out, err := s.Serialize("span")
	require.NoError(t, err)
	assert.True(t, len(out) > len("encoded"))
}

func TestNewWrapperSerializer_Validation(t *testing.T) {
	t.Parallel()
	_, err := NewWrapperSerializer(WrapperSerializerConfig{})
	assert.Error(t, err)

	_, err = NewWrapperSerializer(WrapperSerializerConfig{Registry: &Client{}})
	assert.Error(t, err)

	_, err = NewWrapperSerializer(WrapperSerializerConfig{Registry: &Client{}, Subject: "s"})
	assert.Error(t, err)
}

func TestFXModule(t *testing.T) {
	t.Parallel()
	app := fxtest.New(t,
		fx.Supply(Config{URL: "http://localhost:8081"}),
		FXModule,
	)
	app.RequireStart()
	app.RequireStop()
}
