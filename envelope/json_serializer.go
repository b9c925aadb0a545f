package envelope

import (
	"encoding/json"
	"fmt"

	"github.com/otelpartial/partialspan"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// bodyTypeJSON is the partial.body.type attribute value for records
// produced by JSONSerializer.
const bodyTypeJSON = "json/v1"

// JSONSerializer is the default partialspan.Serializer: it renders the span
// as the OTLP-JSON-shaped Envelope and marshals it to a string.
type JSONSerializer struct{}

// NewJSONSerializer returns the default serializer.
func NewJSONSerializer() JSONSerializer {
	return JSONSerializer{}
}

func (JSONSerializer) Serialize(span sdktrace.ReadOnlySpan, signal partialspan.Signal) (string, error) {
	env := buildEnvelope(span, signal, bodyTypeJSON)
	b, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("envelope: marshal json body: %w", err)
	}
	return string(b), nil
}

// BodyType reports the partial.body.type attribute value for records this
// serializer produces.
func (JSONSerializer) BodyType() string { return bodyTypeJSON }

var _ partialspan.Serializer = JSONSerializer{}
