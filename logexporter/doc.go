// Package logexporter provides partialspan.LogExporter adapters: thin,
// protocol-translation-only wrappers around the transports a collector is
// likely to ingest partial-span records from. None of these adapters carry
// business logic; retries, batching policy, and backoff all live in the
// wrapped transport client, exactly as the processor's contract expects.
package logexporter
